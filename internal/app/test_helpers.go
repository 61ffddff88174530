package app

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance at debug level, with separate
// buffers for results and logs. Logs are dumped when IS_TEST_LOGS=true.
func SetupAppTest(t *testing.T, bundles ...any) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	outBuffer, logBuffer := &SafeBuffer{}, &SafeBuffer{}
	cfg, err := NewConfig(Config{LogLevel: "debug", LogFormat: "text"})
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	testApp := NewApp(outBuffer, logBuffer, cfg, bundles...)

	t.Cleanup(func() {
		if os.Getenv("IS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
