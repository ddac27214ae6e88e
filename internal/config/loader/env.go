package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix prefixes every environment variable kilua reads.
const DefaultEnvPrefix = "KILUA_"

// EnvLoader loads configuration from environment variables.
// KILUA_TAB_STOP=4 becomes the key tab_stop with the integer value 4.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// NewEnvLoaderFrom reads from a fixed list of KEY=VALUE pairs.
func NewEnvLoaderFrom(prefix string, environ []string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: func() []string { return environ },
	}
}

// Load returns the prefixed variables as a flat map. Empty values count as
// set. A nil map is returned when no variable matches.
func (l *EnvLoader) Load() (map[string]any, error) {
	var config map[string]any
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, l.prefix))
		if key == "" {
			continue
		}
		if config == nil {
			config = make(map[string]any)
		}
		config[key] = parseValue(value)
	}
	return config, nil
}

// parseValue guesses the TOML type of an environment value: integer, bool,
// JSON array, or string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if strings.HasPrefix(s, "[") {
		var v []any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}
	return s
}
