// Package main runs a service process that keeps itself registered at a Spring Boot Admin style registry.
// It loads properties (YAML file + environment), validates the registration identity (exit 1 on failure),
// serves /health and /info on server.port so the announced URL is reachable, and runs the registration agent
// on a fixed-delay scheduler until SIGINT/SIGTERM. The process does not deregister on shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myregistrar/adapters"
	"myregistrar/api"
	"myregistrar/domain"
	"myregistrar/handlers"
	"myregistrar/interfaces"
	"myregistrar/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

const registryClientTimeout = 10 * time.Second

// newResolver is replaced in tests.
var newResolver = adapters.CanonicalHostnameResolver

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:           "myregistrar",
		Short:         "Keep this service registered at the registry",
		Long:          `Serves /health and /info on server.port and periodically registers {info.id, http://<canonical-host>:<server.port>} at spring.boot.admin.url.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfgFile, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "YAML properties file (environment variables override it)")
	cmd.Flags().Int("period", int(defaultPeriod/time.Millisecond), "delay between registration ticks in ms (spring.boot.admin.period)")
	return cmd
}

func run(cmd *cobra.Command, cfgFile string, logOut io.Writer) error {
	logger := newLogger(logOut, defaultLogLevel)

	v, err := adapters.LoadProperties(cfgFile)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load properties", "err", err)
		return err
	}
	if err := v.BindPFlag(domain.PropertyPeriod, cmd.Flags().Lookup("period")); err != nil {
		return err
	}
	properties := adapters.NewViperProperties(v)

	config, err := LoadConfig(properties)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		return err
	}
	logger = newLogger(logOut, config.LogLevel)
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"server_port", config.Port,
		"period", config.Period,
		"timeout", config.Timeout,
	)

	agent := newAgent(properties, newResolver(), logger)
	if err := agent.Check(); err != nil {
		level.Error(logger).Log("msg", "Registration identity is incomplete", "err", err)
		return err
	}

	e, err := newEcho(properties, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to build HTTP server", "err", err)
		return err
	}
	serveErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", config.Port)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := service.NewScheduler(agent, config.Period, config.Timeout, logger)
	if err := scheduler.Start(ctx); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		level.Info(logger).Log("msg", "Shutting down...")
	case err = <-serveErr:
		level.Error(logger).Log("msg", "HTTP server error", "err", err)
	}
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", shutdownErr)
	}
	level.Info(logger).Log("msg", "Server stopped")
	return err
}

// newLogger builds the process logger: logfmt on w with ts and caller, filtered at logLevel (info when unknown).
func newLogger(w io.Writer, logLevel string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	option, err := levelOption(logLevel)
	if err != nil {
		option = level.AllowInfo()
	}
	logger = level.NewFilter(logger, option)
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)
	return logger
}

func newAgent(properties interfaces.PropertySource, resolver interfaces.HostnameResolver, logger log.Logger) *service.RegistrationAgent {
	registry := adapters.RegistryHTTP(&http.Client{Timeout: registryClientTimeout})
	return service.NewRegistrationAgent(properties, registry, resolver, logger)
}

func newEcho(properties interfaces.PropertySource, logger log.Logger) (*echo.Echo, error) {
	validator, err := service.NewRequestValidator(api.HostOpenAPI)
	if err != nil {
		return nil, err
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)
	e.Use(validator)
	handlers.RegisterHandlers(e, handlers.NewHTTPServer(properties, logger))
	return e, nil
}
