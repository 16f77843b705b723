package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

// WriteTo encodes the header and one row per result to w.
func WriteTo(w io.Writer, results []players.LookupResult) error {
	cw := csv.NewWriter(w) // rows end in "\n"
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write([]string{r.Name, r.Identifier()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write replaces the report at path. Rows go to a temporary file in the same
// directory which is renamed over path once complete; a failed write leaves
// any previous report untouched.
func Write(path string, results []players.LookupResult) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = WriteTo(tmp, results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace report: %w", err)
	}
	return nil
}

// WriteNames writes one name per line to path, replacing any existing file.
func WriteNames(path string, names []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(f, n); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
