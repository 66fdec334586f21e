package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/hclcad/internal/app"
	"github.com/specialistvlad/hclcad/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output is what the program printed: `print` output and model trees.
	Output string
	// LogOutput holds the logs and the rendered diagnostics.
	LogOutput string
	Err       error
	App       *app.App
	Result    *app.Result
}

// RunSource runs src as the root file main.hcl.
func RunSource(t *testing.T, src string) *HarnessResult {
	t.Helper()
	return RunIntegrationTest(t, map[string]string{"main.hcl": src})
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, modules...)
}

// RunIntegrationTestWithContext writes files into a temporary directory,
// which also serves as the search path, and runs main.hcl from it.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	cfg, err := app.NewConfig(app.Config{
		RootPath:    filepath.Join(tmpDir, "main.hcl"),
		SearchPaths: []string{tmpDir},
		LogLevel:    "debug",
		LogFormat:   "text",
		NoColor:     true,
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(out, logBuffer, cfg, modules...)
	}()
	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	res, runErr := testApp.Run(ctx)

	if os.Getenv("HCLCAD_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		Result:    res,
	}
}
