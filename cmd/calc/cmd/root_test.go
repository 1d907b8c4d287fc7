package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pengelbrecht/boundcalc/internal/config"
	"github.com/pengelbrecht/boundcalc/internal/styles"
)

// runCLI executes calc with an isolated home directory.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)
	return styles.Plain(stdout.String()), styles.Plain(stderr.String()), code
}

func TestArithmeticCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"add", "5", "3"}, "8"},
		{"add negatives", []string{"add", "--", "-5", "-3"}, "-8"},
		{"add max boundary", []string{"add", "1_000_000", "0"}, "1000000"},
		{"subtract", []string{"subtract", "10", "3"}, "7"},
		{"subtract reversed", []string{"subtract", "3", "10"}, "-7"},
		{"multiply", []string{"multiply", "4", "3"}, "12"},
		{"divide", []string{"divide", "6", "3"}, "2"},
		{"divide fraction", []string{"divide", "1", "10"}, "0.1"},
		{"divide reversed", []string{"divide", "2", "8"}, "0.25"},
		{"divide negative", []string{"divide", "--", "-6", "3"}, "-2"},
		{"alias sum", []string{"sum", "1", "10"}, "11"},
		{"alias div", []string{"div", "8", "2"}, "4"},
		{"precision flag", []string{"--precision", "2", "add", "2.5", "3.7"}, "6.20"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, code := runCLI(t, tc.args...)
			require.Equal(t, exitSuccess, code, "stderr: %s", errOut)
			assert.Equal(t, tc.want, strings.TrimSpace(out))
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{"first out of range", []string{"add", "1_000_001", "1"}, exitInvalidInput, "outside the valid range"},
		{"second out of range", []string{"multiply", "--", "0", "-1000001"}, exitInvalidInput, "second operand"},
		{"both out of range", []string{"subtract", "--", "1000001", "-1000001"}, exitInvalidInput, "first operand"},
		{"overflowing literal", []string{"divide", "1e400", "1"}, exitInvalidInput, "outside the valid range"},
		{"divide by zero", []string{"divide", "5", "0"}, exitDivisionByZero, "division by zero"},
		{"not a number", []string{"add", "five", "3"}, exitUsage, "not a number"},
		{"missing operand", []string{"add", "5"}, exitUsage, "accepts 2 arg(s)"},
		{"bad precision", []string{"--precision", "99", "add", "1", "2"}, exitUsage, "--precision"},
		{"bad log level", []string{"--log-level", "loud", "add", "1", "2"}, exitUsage, "unknown log level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, code := runCLI(t, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "error:")
			assert.Contains(t, errOut, tc.contains)
		})
	}
}

func TestJSONOutput(t *testing.T) {
	out, _, code := runCLI(t, "--json", "multiply", "4", "3")
	require.Equal(t, exitSuccess, code)

	var payload resultPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "multiply", payload.Operation)
	assert.Equal(t, "*", payload.Symbol)
	assert.Equal(t, 4.0, payload.A)
	assert.Equal(t, 3.0, payload.B)
	assert.Equal(t, 12.0, payload.Result)
}

func TestDebugLogging(t *testing.T) {
	_, errOut, code := runCLI(t, "--log-level", "debug", "add", "1", "2")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, errOut, "operation computed")
	assert.Contains(t, errOut, "op=add")

	_, errOut, code = runCLI(t, "add", "1_000_001", "2")
	require.Equal(t, exitInvalidInput, code)
	assert.Contains(t, errOut, "operation rejected")
}

func TestConfigFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.json")
	precision := 3
	jsonOut := true
	require.NoError(t, config.Save(path, config.Config{
		Output: &config.OutputConfig{Precision: &precision, JSON: &jsonOut},
	}))

	out, _, code := runCLI(t, "--config", path, "divide", "1", "4")
	require.Equal(t, exitSuccess, code)
	var payload resultPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, 0.25, payload.Result)

	out, _, code = runCLI(t, "--config", path, "--json=false", "divide", "1", "4")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "0.250", strings.TrimSpace(out))
}

func TestInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 9}`), 0o644))

	_, errOut, code := runCLI(t, "--config", path, "add", "1", "2")
	assert.Equal(t, exitConfig, code)
	assert.Contains(t, errOut, "unsupported config version")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.json")

	out, errOut, code := runCLI(t, "--config", path, "config", "init")
	require.Equal(t, exitSuccess, code, "stderr: %s", errOut)
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Output)
	require.NotNil(t, cfg.Output.Precision)
	assert.Equal(t, config.DefaultPrecision, *cfg.Output.Precision)

	_, errOut, code = runCLI(t, "--config", path, "config", "init")
	assert.Equal(t, exitConfig, code)
	assert.Contains(t, errOut, "already exists")

	_, _, code = runCLI(t, "--config", path, "config", "init", "--force")
	assert.Equal(t, exitSuccess, code)

	out, _, code = runCLI(t, "--config", path, "config", "show")
	require.Equal(t, exitSuccess, code)
	var shown config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, config.DefaultVersion, shown.Version)
	assert.Equal(t, config.DefaultLogLevel, shown.Log.GetLevel())
}

func TestDefaultConfigPathUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"config", "init"}, &stdout, &stderr)
	require.Equal(t, exitSuccess, code, "stderr: %s", stderr.String())

	_, err := os.Stat(filepath.Join(home, config.DefaultFileName))
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, _, code := runCLI(t, "version")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "calc dev", strings.TrimSpace(out))
}

func TestUpgradeRefusesDevBuild(t *testing.T) {
	out, errOut, code := runCLI(t, "upgrade")
	assert.Contains(t, out, "Current version: dev")
	if strings.Contains(out, "Homebrew") {
		t.Skip("test binary resolved under a Homebrew prefix")
	}
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "development build")
}

func TestUnknownCommand(t *testing.T) {
	_, errOut, code := runCLI(t, "modulo", "5", "3")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "unknown command")
}
