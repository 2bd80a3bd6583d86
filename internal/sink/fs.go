package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"PhaseWallet/internal/chain"
)

// MakeRunDir creates <base>/<chain>/<DD.MM.YYYY>/<chain>_<HH-MM-SS>.
func MakeRunDir(base string, c chain.Chain) (string, error) {
	return makeRunDir(base, c, time.Now())
}

func makeRunDir(base string, c chain.Chain, now time.Time) (string, error) {
	date := now.Format("02.01.2006")
	name := c.String() + "_" + now.Format("15-04-05")

	dir := filepath.Join(base, c.String(), date, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %q: %w", dir, err)
	}
	return dir, nil
}

func OpenAppend(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// AppendJSONL writes blob plus a newline to path, creating parent dirs.
func AppendJSONL(path string, blob []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := OpenAppend(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(blob); err != nil {
		return err
	}
	_, err = f.Write([]byte("\n"))
	return err
}
