package static

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

// Save validates list and writes it as a dataset file that Load accepts,
// YAML for .yaml/.yml paths and JSON otherwise. The file is replaced
// atomically.
func Save(path string, list []players.Player) (err error) {
	if _, err := FromPlayers(list); err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(list)
	default:
		data, err = json.MarshalIndent(list, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close dataset: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
