package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillmatch/skillmatch/internal/account"
	"github.com/skillmatch/skillmatch/internal/config"
	"github.com/skillmatch/skillmatch/internal/logger"
	"github.com/skillmatch/skillmatch/internal/store"
)

// services bundles what every command opens.
type services struct {
	cfg      config.Config
	store    *store.Store
	log      *logger.Logger
	accounts *account.Store

	closeLog func() error
}

func openServices(cmd *cobra.Command) (*services, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	log, closeLog := logger.NewFileLogger(filepath.Dir(cfg.DBPath), logger.ParseLevel(cfg.LogLevel))

	hasher, err := account.HasherFor(cfg.PasswordHash)
	if err != nil {
		_ = closeLog()
		_ = st.Close()
		return nil, err
	}

	return &services{
		cfg:      cfg,
		store:    st,
		log:      log,
		accounts: account.NewStore(st.KV(), account.WithHasher(hasher), account.WithLogger(log.With("account"))),
		closeLog: closeLog,
	}, nil
}

func (s *services) Close() error {
	_ = s.closeLog()
	return s.store.Close()
}
