package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/viewbind/internal/config"
	"github.com/specialistvlad/viewbind/internal/registry"
	"github.com/specialistvlad/viewbind/internal/testutil"
)

// SetupAppTest creates a debug-logging app for tests. Logs are captured in
// the returned buffer and dumped when VIEWBIND_TEST_LOGS=true.
func SetupAppTest(t *testing.T, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.LogLevel = "debug"

	t.Cleanup(func() {
		if os.Getenv("VIEWBIND_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	testApp, err := NewApp(logBuffer, cfg, loader, modules...)
	if err != nil {
		t.Fatalf("app setup failed: %v", err)
	}
	return testApp, logBuffer
}
