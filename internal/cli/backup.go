package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fukuside/aidea-memo/internal/app"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/usecase"
	"github.com/spf13/cobra"
)

func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Out  string
		Zstd bool
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of all ideas and logs",
		Long: `Write a JSON backup of all ideas and logs.

The file is named idea_diary_backup_<YYYY-MM-DD>.json (".json.zst" with
--zstd) and written to --out, which defaults to [export] dir.
Use --out - to write the document to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("out") && c.AppConfig != nil {
				opts.Out = c.AppConfig.Export.Dir
			}
			if !cmd.Flags().Changed("zstd") && c.AppConfig != nil {
				opts.Zstd = c.AppConfig.Export.Zstd
			}

			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.ExportSnapshotUseCase(store).Execute(cmd.Context(), usecase.ExportSnapshotInput{
				Compress: opts.Zstd,
			})
			if err != nil {
				return err
			}

			if opts.Out == "-" {
				_, err := cmd.OutOrStdout().Write(out.Data)
				return err
			}

			if err := os.MkdirAll(opts.Out, 0o750); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}
			path := filepath.Join(opts.Out, out.Filename)
			if err := os.WriteFile(path, out.Data, 0o600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d ideas, %d logs to %s\n", out.Ideas, out.Logs, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", ".", "Output directory, or - for stdout")
	cmd.Flags().BoolVar(&opts.Zstd, "zstd", false, "Compress the backup with zstd")
	return cmd
}

func newImportCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all ideas and logs with a backup",
		Long: `Replace all ideas and logs with the contents of a backup written by
"diary export". Compressed (.zst) backups are detected automatically.
Use - to read the backup from stdin.

The current diary is discarded, so --yes is required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("%w: pass --yes to replace the current diary", domain.ErrNotConfirmed)
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.ImportSnapshotUseCase(store).Execute(cmd.Context(), usecase.ImportSnapshotInput{
				Data:      data,
				Confirmed: yes,
			})
			if errors.Is(err, domain.ErrInvalidSnapshot) {
				return fmt.Errorf("%s is not a valid backup: %w", args[0], err)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d ideas, %d logs\n", out.Ideas, out.Logs)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm replacing the current diary")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	return data, nil
}
