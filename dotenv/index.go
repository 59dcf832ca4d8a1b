package dotenv

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const FileName = ".env"

// Load reads dir/.env. A missing file or a directory in its place yields an
// empty map and no error.
func Load(dir string) (map[string]string, error) {
	filename := filepath.Join(dir, FileName)

	info, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return map[string]string{}, nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// LoadDefault loads the .env lying next to the running executable.
func LoadDefault() (map[string]string, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}

	return Load(filepath.Dir(exe))
}

// Parse reads KEY=VALUE lines. Blank lines, # comments, lines without "="
// and entries with an empty key or value are skipped. Later keys win.
func Parse(r io.Reader) (map[string]string, error) {
	result := map[string]string{}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}

		result[k] = v
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Apply sets every entry of vars in the process environment.
func Apply(vars map[string]string) error {
	for k, v := range vars {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}

	return nil
}
