package config_test

import (
	"os"
	"testing"
)

// unsetEnv removes variables for the duration of the test. t.Setenv must be
// called first for each key so the original value is restored on cleanup.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}
