package cmd

import (
	"fmt"

	"github.com/abhisek/learnpy/internal/app"
	"github.com/abhisek/learnpy/internal/catalog"
	"github.com/abhisek/learnpy/internal/config"
	"github.com/abhisek/learnpy/internal/kv"
	"github.com/abhisek/learnpy/internal/playground"
	"github.com/abhisek/learnpy/internal/profile"
	"github.com/abhisek/learnpy/internal/quiz"
	"github.com/spf13/cobra"
)

// services bundles the dependencies most commands need.
type services struct {
	cfg     *config.Config
	backing kv.Store
	store   *profile.Store
	catalog *catalog.Catalog
}

func (s *services) Close() {
	_ = s.backing.Close()
}

func (s *services) playgroundURL() string {
	if s.cfg.PlaygroundURL != "" {
		return s.cfg.PlaygroundURL
	}
	return playground.DefaultBaseURL
}

// openServices loads config, opens the store, and loads the catalog.
func openServices(cmd *cobra.Command) (*services, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var backing kv.Store
	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		backing = kv.NewMem()
	} else {
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		backing, err = kv.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
	}

	lessonsPath, _ := cmd.Flags().GetString("lessons")
	if lessonsPath == "" {
		lessonsPath = cfg.LessonsPath
	}

	var cat *catalog.Catalog
	if lessonsPath != "" {
		cat, err = catalog.Load(lessonsPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		_ = backing.Close()
		return nil, fmt.Errorf("load lessons: %w", err)
	}

	return &services{
		cfg:     cfg,
		backing: backing,
		store:   profile.New(backing),
		catalog: cat,
	}, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svcs, err := openServices(cmd)
	if err != nil {
		return err
	}
	defer svcs.Close()

	return app.Run(app.Options{
		Catalog:       svcs.catalog,
		Store:         svcs.store,
		Quiz:          quiz.NewService(svcs.store),
		PlaygroundURL: svcs.playgroundURL(),
	})
}
