package archive

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/goalcast/internal/config"
	"github.com/yourusername/goalcast/internal/database"
)

// Open builds the archive store named by configuration. The returned cleanup
// releases any underlying connections and is safe to call once.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Store, func(), error) {
	switch cfg.Archive.Driver {
	case "file":
		store, err := NewFileStore(cfg.Archive.Dir, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil

	case "postgres":
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store, err := NewPostgresStore(ctx, db, logger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown archive driver: %s", cfg.Archive.Driver)
	}
}
