package dotenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := strings.Join([]string{
		"A=1",
		"# comment",
		"",
		"B=",
		"=C",
		"  D = two = parts  ",
		"no_separator",
		"#E=5",
		"A=2",
	}, "\n")

	got, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"A": "2",
		"D": "two = parts",
	}, got)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("A=1\n# comment\n\nB=\n=C\n"), 0o600))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1"}, got)
}

func TestLoad_Missing(t *testing.T) {
	got, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, FileName), 0o700))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestApply(t *testing.T) {
	t.Setenv("WEBTOOLS_DOTENV_A", "")
	t.Setenv("WEBTOOLS_DOTENV_B", "old")

	require.NoError(t, Apply(map[string]string{
		"WEBTOOLS_DOTENV_A": "1",
		"WEBTOOLS_DOTENV_B": "new",
	}))

	assert.Equal(t, "1", os.Getenv("WEBTOOLS_DOTENV_A"))
	assert.Equal(t, "new", os.Getenv("WEBTOOLS_DOTENV_B"))
}
