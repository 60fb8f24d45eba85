package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":null}`))
	}))
	t.Cleanup(server.Close)

	configPath := filepath.Join(home, "config.toml")
	stdout, stderr, err := runAnimix(t, binaryPath, home, "config", "init", "--path", configPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "wrote "+configPath)

	require.NoError(t, writeFixtures(home, configPath, server.URL))

	stdout, stderr, err = runAnimix(t, binaryPath, home, "--config", configPath, "account", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "query_...rOrc")

	stdout, stderr, err = runAnimix(t, binaryPath, home, "--config", configPath, "run", "--once")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stderr, "Running for user #1")
	assert.Contains(t, stdout, "Metrics")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "animix-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/animix")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build animix binary: %s", string(output))
	return binaryPath
}

func runAnimix(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "ANIMIX_CONFIG=")
	cmd.Dir = home

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeFixtures(home, configPath, baseURL string) error {
	users := "query_id=AAHdF6IQAAAAAN0XohDhrOrc\n"
	if err := os.WriteFile(filepath.Join(home, "users.txt"), []byte(users), 0o600); err != nil {
		return err
	}

	config := fmt.Sprintf(`version = 1

[api]
base_url = %q
timeout = "2s"
max_retries = 0

[run]
pacing = "1ms"
quest_pacing = "1ms"

[log]
color = false
`, baseURL)

	return os.WriteFile(configPath, []byte(config), 0o600)
}
