package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/rebeliceyang/lazyfilter/internal/app"
	"github.com/rebeliceyang/lazyfilter/internal/export"
)

func runTUI(ctx context.Context, opts *RootOptions, outPath string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	columns, err := resolveColumns(ctx, opts, log)
	if err != nil {
		return err
	}

	zone.NewGlobal()
	defer zone.Close()

	model := app.New(cfg, columns, app.WithLogger(log), app.WithOutPath(outPath))

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if ctx != nil {
		progOpts = append(progOpts, tea.WithContext(ctx))
	}

	log.Info("starting", zap.Int("columns", len(columns)))
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	clauses := model.Clauses()
	log.Info("exiting", zap.Int("clauses", len(clauses)))

	if outPath != "" {
		if err := export.ExportToFile(clauses, outPath, export.Format(cfg.Export.DefaultFormat)); err != nil {
			return err
		}
	}
	return nil
}
