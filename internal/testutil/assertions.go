package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that a single log line contains every fragment, so
// tests do not depend on attribute ordering.
func AssertLogged(t *testing.T, logOutput string, fragments ...string) {
	t.Helper()

	for _, line := range strings.Split(logOutput, "\n") {
		matched := true
		for _, f := range fragments {
			if !strings.Contains(line, f) {
				matched = false
				break
			}
		}
		if matched {
			return
		}
	}
	require.Failf(t, "log line not found", "no log line contains all of %q", fragments)
}
