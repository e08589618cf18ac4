package cli

import (
	"fmt"

	"github.com/fukuside/aidea-memo/internal/app"
	"github.com/fukuside/aidea-memo/internal/usecase"
	"github.com/spf13/cobra"
)

func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the diary is stored and what it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.ShowStatusUseCase(store).Execute(cmd.Context(), usecase.ShowStatusInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Data dir: %s\n", out.DataDir)
			_, _ = fmt.Fprintf(w, "Backend:  %s\n", out.Backend)
			_, _ = fmt.Fprintf(w, "Ideas:    %d open, %d done\n", out.Counts.Open, out.Counts.Done)
			_, _ = fmt.Fprintf(w, "Logs:     %d\n", out.Counts.Logs)
			if out.Recovered != nil {
				_, _ = fmt.Fprintf(w, "Recovered: stored data was unreadable and has been reset (%v)\n", out.Recovered)
			}
			if out.LastSaveErr != nil {
				_, _ = fmt.Fprintf(w, "Last save failed: %v\n", out.LastSaveErr)
			}
			return nil
		},
	}
}

func newCategoriesCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List idea categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.ListCategoriesUseCase(store).Execute(cmd.Context(), usecase.ListCategoriesInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, cat := range out.Categories {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d\n", cat.Category, cat.Label, cat.Ideas)
			}
			return nil
		},
	}
}
