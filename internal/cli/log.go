package cli

import (
	"errors"
	"fmt"

	"github.com/fukuside/aidea-memo/internal/app"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogCommand creates the log command group.
func newLogCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"logs"},
		Short:   "Record what you did and what came of it",
	}

	cmd.AddCommand(
		newLogAddCommand(c),
		newLogListCommand(c),
		newLogDeleteCommand(c),
	)
	return cmd
}

func newLogAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Method  string
		Outcome string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a log entry",
		Long: `Add a cause/effect log entry. At least one of --method and --outcome
must be non-empty.

Examples:
  diary log add --method "Walked to work" --outcome "More focused mornings"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.AddLogUseCase(store).Execute(cmd.Context(), usecase.AddLogInput{
				Method:  opts.Method,
				Outcome: opts.Outcome,
			})
			if err != nil {
				return err
			}

			if !out.Created {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing added: method and outcome are both empty")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added log %s\n", out.Entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Method, "method", "m", "", "What was done")
	cmd.Flags().StringVarP(&opts.Outcome, "outcome", "o", "", "What came of it")
	return cmd
}

func newLogListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Search string
		Format string
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List log entries",
		Long: `List log entries, most recent first.

Output format is tab-separated with columns:
  ID, CREATED, METHOD, OUTCOME`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(opts.Format); err != nil {
				return err
			}
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.ListLogsUseCase(store).Execute(cmd.Context(), usecase.ListLogsInput{Search: opts.Search})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Format != formatText {
				records := make([]logRecord, 0, len(out.Logs))
				for _, entry := range out.Logs {
					records = append(records, newLogRecord(entry))
				}
				return writeStructured(w, opts.Format, records)
			}

			if len(out.Logs) == 0 {
				_, _ = fmt.Fprintln(w, "No logs found.")
				return nil
			}
			for _, entry := range out.Logs {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.ID, formatTime(entry.CreatedAt), orDash(entry.Method), orDash(entry.Outcome))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Case-insensitive search term")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "Output format: text, json, yaml")
	return cmd
}

func newLogDeleteCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a log entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.DeleteLogUseCase(store).Execute(cmd.Context(), usecase.DeleteLogInput{
				ID:        args[0],
				Confirmed: yes,
			})
			if errors.Is(err, domain.ErrNotConfirmed) {
				return fmt.Errorf("%w: pass --yes to delete log %s", err, args[0])
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted log %s\n", out.Entry.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}
