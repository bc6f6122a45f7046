package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rebeliceyang/lazyfilter/internal/config"
	"github.com/rebeliceyang/lazyfilter/internal/logger"
	"github.com/rebeliceyang/lazyfilter/internal/models"
	"github.com/rebeliceyang/lazyfilter/internal/schema"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	SchemaPath string
	DSN        string
	DBSchema   string
	Table      string
	LogLevel   string
	LogFile    string
}

// NewRootCommand creates the root command. Without a subcommand it starts the
// interactive filter builder.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	var outPath string

	cmd := &cobra.Command{
		Use:   "lazyfilter",
		Short: "Interactive filter clause builder",
		Long: `Build a list of column/operator/value filter clauses in the terminal.

Columns come from a YAML schema file (--schema), from a PostgreSQL table
(--table, connecting with --dsn or the PG* environment variables), or from
a built-in demo schema.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Table != "" && opts.DSN == "" && !schema.HasEnvironment() {
				return fmt.Errorf("--table requires --dsn or PGHOST/PGDATABASE")
			}
			if opts.SchemaPath != "" && opts.DSN != "" {
				return fmt.Errorf("--schema and --dsn are mutually exclusive")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts, outPath)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default: user config dir, ./config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.SchemaPath, "schema", "", "YAML schema file describing the columns")
	cmd.PersistentFlags().StringVar(&opts.DSN, "dsn", "", "PostgreSQL connection string to read columns from")
	cmd.PersistentFlags().StringVar(&opts.DBSchema, "db-schema", "public", "PostgreSQL schema of --table")
	cmd.PersistentFlags().StringVar(&opts.Table, "table", "", "PostgreSQL table to read columns from")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), overrides config")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "log file, overrides config")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the clauses to this file on exit (.json, .csv, otherwise export.default_format)")

	cmd.AddCommand(NewSchemaCommand(opts))

	return cmd
}

// loadConfig reads the explicit config file, or the default locations
func loadConfig(opts *RootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Level, cfg.Log.File)
}

// resolveColumns picks the column source named by the flags
func resolveColumns(ctx context.Context, opts *RootOptions, log *zap.Logger) ([]models.ColumnDef, error) {
	switch {
	case opts.SchemaPath != "":
		log.Info("loading schema file", zap.String("path", opts.SchemaPath))
		return schema.LoadFile(opts.SchemaPath)
	case opts.DSN != "" || (opts.Table != "" && schema.HasEnvironment()):
		if opts.Table == "" {
			return nil, fmt.Errorf("--dsn requires --table")
		}
		return introspect(ctx, opts, log)
	default:
		log.Info("using demo schema")
		return schema.DemoColumns(), nil
	}
}

func introspect(ctx context.Context, opts *RootOptions, log *zap.Logger) ([]models.ColumnDef, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := schema.Connect(ctx, opts.DSN)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	log.Info("introspecting table",
		zap.String("schema", opts.DBSchema),
		zap.String("table", opts.Table),
	)
	return schema.Introspect(ctx, pool, opts.DBSchema, opts.Table)
}
