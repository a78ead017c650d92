package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Init is once-per-process, so one test drives the whole lifecycle.
func TestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glint.log")
	cleanup, err := Init(path)
	require.NoError(t, err)
	defer cleanup()

	read := func() string {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}

	// ============================================================
	// Levels, categories, and key=value fields
	// ============================================================
	Info(CatSyntax, "mode selected", "mode", "Algol68", "path", "x.a68")
	out := read()
	require.Contains(t, out, "[INFO]")
	require.Contains(t, out, "[syntax]")
	require.Contains(t, out, "mode selected")
	require.Contains(t, out, "mode=Algol68")
	require.Contains(t, out, "path=x.a68")

	Warn(CatWatch, "odd fields", "orphan")
	require.Contains(t, read(), "orphan=<missing>")

	ErrorErr(CatDoc, "reload failed", os.ErrNotExist)
	out = read()
	require.Contains(t, out, "[ERROR]")
	require.Contains(t, out, "error=file does not exist")

	// ============================================================
	// Level filtering and the enabled switch
	// ============================================================
	SetMinLevel(LevelWarn)
	Debug(CatCache, "filtered out")
	require.NotContains(t, read(), "filtered out")
	SetMinLevel(LevelDebug)

	SetEnabled(false)
	Info(CatUI, "dropped while disabled")
	require.NotContains(t, read(), "dropped while disabled")
	SetEnabled(true)

	Debug(CatConfig, "back on")
	require.Contains(t, read(), "back on")
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
