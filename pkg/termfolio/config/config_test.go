package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/termfolio/pkg/termfolio/config"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"USER", "HOST", "MANIFEST", "LOG_LEVEL", "COLOR"} {
		t.Setenv("TERMFOLIO_"+key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "alex", c.User)
	assert.Equal(t, "portfolio", c.Host)
	assert.Equal(t, "", c.Manifest)
	assert.Equal(t, "warn", c.LogLevel)
	assert.True(t, c.Color)
	assert.Equal(t, "", c.File)

	level, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "termfolio.yaml", "user: sam\nhost: lab\nlog-level: debug\ncolor: false\n")

	c, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "sam", c.User)
	assert.Equal(t, "lab", c.Host)
	assert.Equal(t, "debug", c.LogLevel)
	assert.False(t, c.Color)
	assert.Equal(t, path, c.File)
}

func TestLoadSearchesHome(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".termfolio"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".termfolio", "termfolio.yaml"), []byte("host: found\n"), 0o644))

	c, err := config.Load(config.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "found", c.Host)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "termfolio.yaml", "user: sam\nlog-level: debug\n")
	t.Setenv("TERMFOLIO_USER", "kim")
	t.Setenv("TERMFOLIO_LOG_LEVEL", "error")

	c, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "kim", c.User)
	assert.Equal(t, "error", c.LogLevel)
}

func TestExplicitValuesWin(t *testing.T) {
	isolate(t)
	path := writeFile(t, "termfolio.yaml", "user: sam\n")
	t.Setenv("TERMFOLIO_USER", "kim")

	v := config.New()
	v.Set(config.KeyUser, "flag")
	c, err := config.Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, "flag", c.User)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit config file must exist")

	path := writeFile(t, "termfolio.yaml", "log-level: chatty\n")
	_, err = config.Load(config.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log-level")

	path = writeFile(t, "termfolio.yaml", "user: [unclosed\n")
	_, err = config.Load(config.New(), path)
	assert.Error(t, err)
}

func TestFilesystem(t *testing.T) {
	isolate(t)

	c, err := config.Load(config.New(), "")
	require.NoError(t, err)
	fsys, err := c.Filesystem(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/home/alex", fsys.Home())

	manifest := writeFile(t, "tree.yaml", "home: /home/sam\nentries:\n  - path: /home/sam/hi.txt\n    content: hi\n")
	c.Manifest = manifest
	fsys, err = c.Filesystem(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/home/sam", fsys.Home())
	assert.True(t, fsys.PathExists("/home/sam/hi.txt"))

	c.Manifest = filepath.Join(t.TempDir(), "nope.yaml")
	_, err = c.Filesystem(zerolog.Nop())
	assert.Error(t, err)
}

func TestFilesystemLogsAsVFS(t *testing.T) {
	var buf bytes.Buffer
	c := &config.Config{}
	_, err := c.Filesystem(zerolog.New(&buf).Level(zerolog.DebugLevel))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"component":"vfs"`)
}

func TestSessionOptions(t *testing.T) {
	c := &config.Config{User: "sam", Host: "lab"}
	assert.Len(t, c.SessionOptions(zerolog.Nop()), 3)
}
