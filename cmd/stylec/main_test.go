package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recera/stylecollector/pkg/styling"
)

const testManifest = `
elements:
  - name: button
    fragments:
      - styles: ["color: ", ";"]
        tokens: ["colors.primary"]
      - when: { prop: disabled }
        styles: ["opacity: 0.5;"]
  - name: card
    fragments:
      - styles: ["padding: 1rem;"]
`

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	prev := appFs
	appFs = fs
	t.Cleanup(func() { appFs = prev })
	return fs
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHashCommand(t *testing.T) {
	useMemFs(t)

	out, _, err := run(t, "hash", "color: ", ";")
	require.NoError(t, err)
	assert.Equal(t, styling.Hash("color: ;")+"\n", out)

	_, _, err = run(t, "hash")
	assert.Error(t, err)
}

func TestInspectCommand_JSON(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/project/styles.yaml", []byte(testManifest), 0644))

	out, _, err := run(t, "-C", "/project", "inspect", "--format", "json")
	require.NoError(t, err)

	var sums []styling.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sums))
	require.Len(t, sums, 3)
	assert.Equal(t, "button", sums[0].Element)
	assert.Equal(t, "__", sums[0].Separator)
	assert.Equal(t, "--", sums[1].Separator)
	assert.Equal(t, "card__"+styling.Hash("padding: 1rem;"), sums[2].ClassName)
}

func TestInspectCommand_ConfigAndElement(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/project/design/ui.yaml", []byte(testManifest), 0644))
	require.NoError(t, afero.WriteFile(fs, "/project/stylec.yaml", []byte("manifest: design/ui.yaml\noutput:\n  color: false\n"), 0644))

	out, _, err := run(t, "-C", "/project", "inspect", "-e", "card")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "card (1)\n"))
	assert.NotContains(t, out, "button")
}

func TestInspectCommand_UnknownElement(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/project/styles.yaml", []byte(testManifest), 0644))

	out, stderr, err := run(t, "-C", "/project", "inspect", "-e", "modal")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "element not found")
}

func TestInspectCommand_Errors(t *testing.T) {
	fs := useMemFs(t)

	_, _, err := run(t, "-C", "/project", "inspect")
	assert.Error(t, err, "missing manifest")

	require.NoError(t, afero.WriteFile(fs, "/project/bad.yaml", []byte("elements:\n  - name: x\n    fragments:\n      - styles: [\"a\"]\n        tokens: [\"t\"]\n"), 0644))
	_, _, err = run(t, "-C", "/project", "inspect", "/project/bad.yaml")
	assert.ErrorIs(t, err, styling.ErrMisalignedTemplate)
}

func TestManifestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0644))

	reloads := make(chan string, 8)
	w := &manifestWatcher{
		path:     path,
		debounce: 20 * time.Millisecond,
		reload: func(p string) error {
			reloads <- p
			return nil
		},
		log:   logrus.NewEntry(logrus.New()),
		ready: make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.ready:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not start")
	}

	select {
	case p := <-reloads:
		assert.Equal(t, path, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial reload")
	}

	// Unrelated files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	require.NoError(t, os.WriteFile(path, []byte(testManifest+"\n"), 0644))
	select {
	case p := <-reloads:
		assert.Equal(t, path, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
