// Package env reads diag's configuration variables from the process environment.
package env

import (
	"os"
	"strconv"
	"strings"
)

// Prefix is prepended to every key that is passed as a short name to [Key].
const Prefix = "DIAG_"

// Key returns the full variable name for a short configuration name, e.g. Key("exit_code") is "DIAG_EXIT_CODE".
func Key(name string) string {
	return Prefix + strings.ToUpper(name)
}

// lookup finds a variable by name, comparing keys case-insensitive.
// Blank values are treated as unset.
func lookup(key string) (string, bool) {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.TrimSpace(val)
		return val, len(val) > 0
	}
	for _, kv := range os.Environ() {
		k, v, found := strings.Cut(kv, "=")
		if !found || !strings.EqualFold(k, key) {
			continue
		}
		v = strings.TrimSpace(v)
		return v, len(v) > 0
	}
	return "", false
}

// Val returns the trimmed value of the variable, or defaultVal if it's unset or blank.
func Val(key string, defaultVal string) string {
	if val, ok := lookup(key); ok {
		return val
	}
	return defaultVal
}

var (
	TrueValues  = []string{"1", "yes", "true", "on"}  // TrueValues are the values [Bool] considers true.
	FalseValues = []string{"0", "no", "false", "off"} // FalseValues are the values [Bool] considers false.
)

// Bool interprets a variable as a boolean using [TrueValues] and [FalseValues], case-insensitive.
// The defaultVal is returned if the variable isn't set, is blank, or isn't recognized.
func Bool(key string, defaultVal bool) bool {
	val, ok := lookup(key)
	if !ok {
		return defaultVal
	}
	for _, t := range TrueValues {
		if strings.EqualFold(val, t) {
			return true
		}
	}
	for _, f := range FalseValues {
		if strings.EqualFold(val, f) {
			return false
		}
	}
	return defaultVal
}

// Int interprets a variable as a base 10 integer, returning defaultVal if it's unset or can't be parsed.
func Int(key string, defaultVal int) int {
	val, ok := lookup(key)
	if !ok {
		return defaultVal
	}
	ival, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return ival
}
