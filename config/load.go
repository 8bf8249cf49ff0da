package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	schematypes "github.com/taskcluster/go-schematypes"
	yaml "gopkg.in/yaml.v2"
)

// Load validates data against Schema and maps it onto a Config with
// defaults applied. An empty map yields the default configuration.
func Load(data map[string]interface{}) (Config, error) {
	var c Config
	if err := Schema.Validate(data); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	if err := schematypes.MustMap(Schema, data, &c); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return c.WithDefaults(), nil
}

// LoadFile reads a YAML configuration file and loads it with Load.
func LoadFile(filename string) (Config, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file: %s", filename)
	}

	var parsed interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse YAML from: %s", filename)
	}
	// yaml.Unmarshal produces map[interface{}]interface{}, the schema
	// validation needs plain JSON compatible types.
	parsed = convertSimpleJSONTypes(parsed)

	m, ok := parsed.(map[string]interface{})
	if !ok {
		return Config{}, errors.Errorf("expected top-level object in: %s", filename)
	}
	return Load(m)
}

// convertSimpleJSONTypes rewrites YAML typed values to JSON compatible ones.
// credits: https://github.com/go-yaml/yaml/issues/139#issuecomment-220072190
func convertSimpleJSONTypes(val interface{}) interface{} {
	switch val := val.(type) {
	case []interface{}:
		r := make([]interface{}, len(val))
		for i, v := range val {
			r[i] = convertSimpleJSONTypes(v)
		}
		return r
	case map[interface{}]interface{}:
		r := make(map[string]interface{})
		for k, v := range val {
			s, ok := k.(string)
			if !ok {
				s = "unsupported-key"
			}
			r[s] = convertSimpleJSONTypes(v)
		}
		return r
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return val
	}
}
