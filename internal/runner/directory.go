package runner

import (
	"fmt"

	"github.com/preston-bernstein/nba-id-lookup/internal/config"
	"github.com/preston-bernstein/nba-id-lookup/internal/directory"
	"github.com/preston-bernstein/nba-id-lookup/internal/directory/balldontlie"
	"github.com/preston-bernstein/nba-id-lookup/internal/directory/static"
)

func selectDirectory(cfg config.DirectoryConfig) (directory.Directory, error) {
	switch cfg.Kind {
	case config.DirectoryStatic, "":
		var (
			dir *static.Directory
			err error
		)
		if cfg.Dataset != "" {
			dir, err = static.Load(cfg.Dataset)
		} else {
			dir, err = static.New()
		}
		if err != nil {
			return nil, err
		}
		return dir, nil
	case config.DirectoryBalldontlie:
		return balldontlie.NewClient(balldontlie.Config{
			BaseURL: cfg.Balldontlie.BaseURL,
			APIKey:  cfg.Balldontlie.APIKey,
			Timeout: cfg.Balldontlie.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown directory %q", cfg.Kind)
	}
}
