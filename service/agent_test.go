package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"myregistrar/domain"
	"myregistrar/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHost = "svc-host.example.com"

func propertiesOf(values map[string]string) *mock.PropertySourceMock {
	return &mock.PropertySourceMock{
		GetFunc: func(key string) (string, bool) {
			v, ok := values[key]
			return v, ok
		},
	}
}

func defaultProperties() map[string]string {
	return map[string]string{
		domain.PropertyRegistryURL: "http://reg:8080",
		domain.PropertyServerPort:  "8080",
		domain.PropertyID:          "svc-1",
	}
}

func fixedResolver() *mock.HostnameResolverMock {
	return &mock.HostnameResolverMock{
		CanonicalHostnameFunc: func(ctx context.Context) (string, error) {
			return testHost, nil
		},
	}
}

func TestNewRegistrationAgent_Panics(t *testing.T) {
	props := propertiesOf(defaultProperties())
	registry := &mock.RegistryMock{}
	resolver := fixedResolver()
	logger := log.NewNopLogger()

	t.Run("properties_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.agent.go: properties is required", func() {
			NewRegistrationAgent(nil, registry, resolver, logger)
		})
	})
	t.Run("registry_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.agent.go: registry is required", func() {
			NewRegistrationAgent(props, nil, resolver, logger)
		})
	})
	t.Run("resolver_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.agent.go: resolver is required", func() {
			NewRegistrationAgent(props, registry, nil, logger)
		})
	})
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.agent.go: logger is required", func() {
			NewRegistrationAgent(props, registry, resolver, nil)
		})
	})
}

func TestRegistrationAgent_Check(t *testing.T) {
	tests := []struct {
		name        string
		remove      string
		override    map[string]string
		wantCode    string
		wantMessage string
	}{
		{
			name: "all present",
		},
		{
			name:        "registry url missing",
			remove:      domain.PropertyRegistryURL,
			wantCode:    ErrMissingProperty,
			wantMessage: "property spring.boot.admin.url is required",
		},
		{
			name:        "port missing",
			remove:      domain.PropertyServerPort,
			wantCode:    ErrMissingProperty,
			wantMessage: "property server.port is required",
		},
		{
			name:        "id missing",
			remove:      domain.PropertyID,
			wantCode:    ErrMissingProperty,
			wantMessage: "property info.id is required",
		},
		{
			name:        "id blank",
			override:    map[string]string{domain.PropertyID: "   "},
			wantCode:    ErrMissingProperty,
			wantMessage: "property info.id is required",
		},
		{
			name:        "port not a number",
			override:    map[string]string{domain.PropertyServerPort: "http"},
			wantCode:    ErrInvalidProperty,
			wantMessage: "property server.port is invalid",
		},
		{
			name:        "port out of range",
			override:    map[string]string{domain.PropertyServerPort: "70000"},
			wantCode:    ErrInvalidProperty,
			wantMessage: "property server.port is invalid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := defaultProperties()
			delete(values, tt.remove)
			for k, v := range tt.override {
				values[k] = v
			}
			registry := &mock.RegistryMock{}
			agent := NewRegistrationAgent(propertiesOf(values), registry, fixedResolver(), log.NewNopLogger())

			err := agent.Check()
			if tt.wantCode == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				myErr := ToMyError(err)
				require.NotNil(t, myErr)
				assert.Equal(t, tt.wantCode, myErr.Code)
				assert.Equal(t, tt.wantMessage, myErr.Message)
			}
			assert.Empty(t, registry.ListApplicationsCalls())
			assert.Empty(t, registry.RegisterApplicationCalls())
		})
	}
}

func TestRegistrationAgent_Register_NotListed(t *testing.T) {
	registry := &mock.RegistryMock{
		ListApplicationsFunc: func(ctx context.Context, registryURL string) (domain.RegistryListing, error) {
			return domain.RegistryListing{}, nil
		},
	}
	agent := NewRegistrationAgent(propertiesOf(defaultProperties()), registry, fixedResolver(), log.NewNopLogger())

	outcome, err := agent.Register(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRegistered, outcome.Status)

	want := domain.RegistrationEntry{ID: "svc-1", URL: "http://" + testHost + ":8080"}
	assert.Equal(t, want, outcome.Entry)

	require.Len(t, registry.ListApplicationsCalls(), 1)
	assert.Equal(t, "http://reg:8080", registry.ListApplicationsCalls()[0].RegistryURL)
	calls := registry.RegisterApplicationCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "http://reg:8080", calls[0].RegistryURL)
	assert.Equal(t, want, calls[0].Entry)
}

func TestRegistrationAgent_Register_AlreadyListed(t *testing.T) {
	listings := map[string]domain.RegistryListing{
		"only entry": {{ID: "svc-1", URL: "http://other:9090"}},
		"first": {
			{ID: "svc-1", URL: "http://other:9090"},
			{ID: "svc-2", URL: "http://b:1"},
		},
		"last": {
			{ID: "svc-0", URL: "http://a:1"},
			{ID: "svc-2", URL: "http://b:1"},
			{ID: "svc-1"},
		},
	}
	for name, listing := range listings {
		t.Run(name, func(t *testing.T) {
			registry := &mock.RegistryMock{
				ListApplicationsFunc: func(ctx context.Context, registryURL string) (domain.RegistryListing, error) {
					return listing, nil
				},
			}
			resolver := fixedResolver()
			agent := NewRegistrationAgent(propertiesOf(defaultProperties()), registry, resolver, log.NewNopLogger())

			outcome, err := agent.Register(context.Background())
			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeAlreadyRegistered, outcome.Status)
			assert.Equal(t, "svc-1", outcome.Entry.ID)
			assert.Empty(t, registry.RegisterApplicationCalls())
			assert.Empty(t, resolver.CanonicalHostnameCalls())
		})
	}
}

func TestRegistrationAgent_Register_Failures(t *testing.T) {
	listErr := NewRegistryUnavailableError("connection refused", errors.New("dial tcp: connection refused"))
	writeErr := NewRegistryBadResponseError("registry returned 500", nil)
	hostErr := NewHostnameUnresolvedError("no such host", nil)

	tests := []struct {
		name       string
		listErr    error
		hostErr    error
		writeErr   error
		wantCode   string
		wantWrites int
	}{
		{
			name:       "list fails",
			listErr:    listErr,
			wantCode:   ErrRegistryUnavailable,
			wantWrites: 0,
		},
		{
			name:       "hostname fails",
			hostErr:    hostErr,
			wantCode:   ErrHostnameUnresolved,
			wantWrites: 0,
		},
		{
			name:       "write fails",
			writeErr:   writeErr,
			wantCode:   ErrRegistryBadResponse,
			wantWrites: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &mock.RegistryMock{
				ListApplicationsFunc: func(ctx context.Context, registryURL string) (domain.RegistryListing, error) {
					if tt.listErr != nil {
						return nil, tt.listErr
					}
					return domain.RegistryListing{}, nil
				},
				RegisterApplicationFunc: func(ctx context.Context, registryURL string, entry domain.RegistrationEntry) error {
					return tt.writeErr
				},
			}
			resolver := &mock.HostnameResolverMock{
				CanonicalHostnameFunc: func(ctx context.Context) (string, error) {
					if tt.hostErr != nil {
						return "", tt.hostErr
					}
					return testHost, nil
				},
			}
			agent := NewRegistrationAgent(propertiesOf(defaultProperties()), registry, resolver, log.NewNopLogger())

			outcome, err := agent.Register(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, ToMyErrorCode(err))
			assert.Equal(t, domain.RegistrationOutcome{}, outcome)
			assert.Len(t, registry.RegisterApplicationCalls(), tt.wantWrites)
		})
	}
}

func TestRegistrationAgent_Register_RereadsProperties(t *testing.T) {
	values := defaultProperties()
	registry := &mock.RegistryMock{}
	agent := NewRegistrationAgent(propertiesOf(values), registry, fixedResolver(), log.NewNopLogger())

	_, err := agent.Register(context.Background())
	require.NoError(t, err)

	values[domain.PropertyRegistryURL] = "http://reg-2:8080"
	values[domain.PropertyServerPort] = "9090"
	outcome, err := agent.Register(context.Background())
	require.NoError(t, err)

	calls := registry.RegisterApplicationCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "http://reg-2:8080", calls[1].RegistryURL)
	assert.Equal(t, "http://"+testHost+":9090", outcome.Entry.URL)
}

func TestRegistrationAgent_Run_Logs(t *testing.T) {
	tests := []struct {
		name       string
		listing    domain.RegistryListing
		listErr    error
		writeErr   error
		wantLevel  string
		wantFields []string
	}{
		{
			name:       "already registered logs debug",
			listing:    domain.RegistryListing{{ID: "svc-1", URL: "http://other:9090"}},
			wantLevel:  "level=debug",
			wantFields: []string{"id=svc-1", `msg="Application already registered"`},
		},
		{
			name:       "registered logs info with id and url",
			listing:    domain.RegistryListing{},
			wantLevel:  "level=info",
			wantFields: []string{"id=svc-1", "url=http://" + testHost + ":8080"},
		},
		{
			name:       "list failure logs warn",
			listErr:    NewRegistryUnavailableError("connection refused", nil),
			wantLevel:  "level=warn",
			wantFields: []string{"connection refused"},
		},
		{
			name:       "write failure logs warn",
			listing:    domain.RegistryListing{},
			writeErr:   NewRegistryBadResponseError("registry returned 503", nil),
			wantLevel:  "level=warn",
			wantFields: []string{"registry returned 503"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			registry := &mock.RegistryMock{
				ListApplicationsFunc: func(ctx context.Context, registryURL string) (domain.RegistryListing, error) {
					return tt.listing, tt.listErr
				},
				RegisterApplicationFunc: func(ctx context.Context, registryURL string, entry domain.RegistrationEntry) error {
					return tt.writeErr
				},
			}
			agent := NewRegistrationAgent(propertiesOf(defaultProperties()), registry, fixedResolver(), log.NewLogfmtLogger(&buf))

			assert.NotPanics(t, func() { agent.Run(context.Background()) })

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "component=registration_agent")
			for _, f := range tt.wantFields {
				assert.Contains(t, out, f)
			}
		})
	}
}

func TestRegistrationAgent_Run_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	registry := &mock.RegistryMock{
		ListApplicationsFunc: func(ctx context.Context, registryURL string) (domain.RegistryListing, error) {
			panic("registry client bug")
		},
	}
	agent := NewRegistrationAgent(propertiesOf(defaultProperties()), registry, fixedResolver(), log.NewLogfmtLogger(&buf))

	assert.NotPanics(t, func() { agent.Run(context.Background()) })
	assert.Contains(t, buf.String(), "level=warn")
	assert.Contains(t, buf.String(), "registry client bug")
}

func TestRegistrationAgent_Run_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	registry := &mock.RegistryMock{
		ListApplicationsFunc: func(ctx context.Context, registryURL string) (domain.RegistryListing, error) {
			return nil, NewRegistryUnavailableError("registry request failed", ctx.Err())
		},
	}
	agent := NewRegistrationAgent(propertiesOf(defaultProperties()), registry, fixedResolver(), log.NewNopLogger())

	assert.NotPanics(t, func() { agent.Run(ctx) })
	assert.Empty(t, registry.RegisterApplicationCalls())
}

func TestInstanceURL(t *testing.T) {
	assert.Equal(t, "http://reg:8080", InstanceURL("reg", 8080))
	assert.Equal(t, "http://10.0.0.7:9000", InstanceURL("10.0.0.7", 9000))
	assert.Equal(t, "http://[fe80::1]:8080", InstanceURL("fe80::1", 8080))
}
