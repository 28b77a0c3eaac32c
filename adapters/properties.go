package adapters

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"myregistrar/helpers"
	"myregistrar/interfaces"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// MapProperties is a fixed interfaces.PropertySource, used when the agent is embedded with an in-process
// configuration.
type MapProperties map[string]string

// Get returns the value for key and whether it is present.
func (m MapProperties) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// NewViperProperties creates an interfaces.PropertySource backed by v. Panics on nil v.
//
// Lookup order is viper's: explicit Set, changed flags, environment, config file, defaults.
func NewViperProperties(v *viper.Viper) interfaces.PropertySource {
	return &viperProperties{v: helpers.NilPanic(v, "adapters.properties.go: viper is required")}
}

type viperProperties struct {
	v *viper.Viper
}

func (p *viperProperties) Get(key string) (string, bool) {
	if !p.v.IsSet(key) {
		return "", false
	}
	return p.v.GetString(key), true
}

// LoadProperties builds the viper instance used by the process. Environment variables are bound with relaxed
// names (spring.boot.admin.url → SPRING_BOOT_ADMIN_URL) and take precedence over the file.
//
// An empty path means environment only.
//
// Returns: (*viper.Viper, nil) on success; (nil, error) when the file cannot be read or parsed.
//
// Called from cmd/myregistrar before the agent is built.
func LoadProperties(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if path == "" {
		return v, nil
	}

	props, err := loadYAMLProperties(path)
	if err != nil {
		return nil, fmt.Errorf("load properties %s: %w", path, err)
	}
	if err := v.MergeConfigMap(props); err != nil {
		return nil, fmt.Errorf("merge properties %s: %w", path, err)
	}
	return v, nil
}

// loadYAMLProperties reads every document of the YAML file at path. Later documents override earlier ones.
// Dotted keys ("server.port: 8080") are expanded into nested maps so both spellings address the same property.
func loadYAMLProperties(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := map[string]any{}
	dec := yaml.NewDecoder(f)
	for {
		var doc map[string]any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if doc == nil {
			continue
		}
		mergeInto(out, expandDottedKeys(doc))
	}
	return out, nil
}

// expandDottedKeys turns {"a.b": 1} into {"a": {"b": 1}} at every level.
func expandDottedKeys(in map[string]any) map[string]any {
	out := map[string]any{}
	for key, value := range in {
		value = normalizeValue(value)
		parts := strings.Split(key, ".")
		for i := len(parts) - 1; i > 0; i-- {
			value = map[string]any{parts[i]: value}
		}
		mergeInto(out, map[string]any{parts[0]: value})
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return expandDottedKeys(v)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = val
		}
		return expandDottedKeys(m)
	default:
		return value
	}
}

// mergeInto deep-merges src into dst; on conflicts that are not both maps src wins.
func mergeInto(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeInto(dstMap, srcMap)
			continue
		}
		dst[key] = value
	}
}
