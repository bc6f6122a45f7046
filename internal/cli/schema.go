package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rebeliceyang/lazyfilter/internal/schema"
)

// NewSchemaCommand creates the schema command, which prints the resolved
// column schema as YAML. Pointed at a database it bootstraps a schema file.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the column schema as YAML",
		Long: `Resolve the column schema from --schema, --dsn/--table or the demo schema,
validate it, and print it as YAML. The output can be passed back with --schema.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			columns, err := resolveColumns(cmd.Context(), rootOpts, log)
			if err != nil {
				return err
			}

			data, err := schema.Marshal(columns)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write schema file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d column(s) to %s\n", len(columns), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the schema to this file instead of stdout")
	return cmd
}
