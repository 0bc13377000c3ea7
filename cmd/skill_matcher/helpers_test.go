package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateEnv clears every variable config.FromEnv reads so tests use the
// embedded catalog and the vocabulary extractor.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CATALOG_PATH", "RESOURCES_PATH", "FRONTEND_URL", "STATIC_DIR",
		"GEMINI_API_KEY", "GEMINI_MODEL", "LOG_LEVEL", "RECOMMEND_GROUP_BY", "EXTRACT_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "error")
}

// execute runs the CLI in-process and returns everything written to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func executeJSON[T any](t *testing.T, args ...string) T {
	t.Helper()
	out, err := execute(t, append(args, "--json")...)
	require.NoError(t, err, out)

	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func countOccurrences(s, sub string) int {
	return strings.Count(s, sub)
}

func jsonUnmarshal(raw string, v any) error {
	return json.Unmarshal([]byte(raw), v)
}
