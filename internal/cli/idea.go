package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fukuside/aidea-memo/internal/app"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/usecase"
	"github.com/spf13/cobra"
)

// newIdeaCommand creates the idea command group.
func newIdeaCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "idea",
		Aliases: []string{"ideas", "i"},
		Short:   "Capture and manage ideas",
	}

	cmd.AddCommand(
		newIdeaAddCommand(c),
		newIdeaListCommand(c),
		newIdeaShowCommand(c),
		newIdeaFieldCommand(c, domain.FieldMethod, "Set the action plan of an idea"),
		newIdeaFieldCommand(c, domain.FieldOutcome, "Set the outcome of an idea"),
		newIdeaSetCommand(c),
		newIdeaToggleCommand(c),
		newIdeaDeleteCommand(c),
	)
	return cmd
}

func newIdeaAddCommand(c *app.Container) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add an idea",
		Long: `Add an idea. Arguments are joined with spaces.

Categories: work (仕事), private (プライベート), idea (アイデア), other (その他).

Examples:
  diary idea add "Start a podcast" --category private
  diary idea add Automate the weekly report`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.AddIdeaUseCase(store).Execute(cmd.Context(), usecase.AddIdeaInput{
				Text:     strings.Join(args, " "),
				Category: category,
			})
			if err != nil {
				return err
			}

			if !out.Created {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing added: idea text is empty")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added idea %s %s\n", out.Idea.ID, newStyles(cmd.OutOrStdout()).category(out.Idea.Category))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category: work, private, idea, other (default work)")
	return cmd
}

func newIdeaListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		View   string
		Search string
		Format string
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List ideas",
		Long: `List ideas, most recent first.

Views:
  open (alias list)  ideas not yet executed
  action             ideas not yet executed, with their action plan
  done               executed ideas
  all                everything (default)

--search matches the idea text or the category label, ignoring case and
full-width/half-width differences.

Output format is tab-separated with columns:
  ID, STATE, CATEGORY, TEXT

Examples:
  diary idea list --view open
  diary idea list --search podcast --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(opts.Format); err != nil {
				return err
			}
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.ListIdeasUseCase(store).Execute(cmd.Context(), usecase.ListIdeasInput{
				View:   opts.View,
				Search: opts.Search,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Format != formatText {
				records := make([]ideaRecord, 0, len(out.Ideas))
				for _, idea := range out.Ideas {
					records = append(records, newIdeaRecord(idea))
				}
				return writeStructured(w, opts.Format, records)
			}

			if len(out.Ideas) == 0 {
				_, _ = fmt.Fprintln(w, "No ideas found.")
				return nil
			}
			printIdeaList(w, out.Ideas, out.View == domain.ViewAction)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.View, "view", "v", "", "View: open, action, done, all")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Case-insensitive search term")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "Output format: text, json, yaml")
	return cmd
}

func printIdeaList(w io.Writer, ideas []domain.Idea, withPlan bool) {
	st := newStyles(w)
	for _, idea := range ideas {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", idea.ID, st.state(idea.Executed), st.category(idea.Category), idea.Text)
		if withPlan && idea.Method != "" {
			_, _ = fmt.Fprintf(w, "\t→ %s\n", idea.Method)
		}
	}
}

func newIdeaShowCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display idea details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.ShowIdeaUseCase(store).Execute(cmd.Context(), usecase.ShowIdeaInput{ID: args[0]})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format != formatText {
				return writeStructured(w, format, newIdeaRecord(out.Idea))
			}
			printIdea(w, out.Idea)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, yaml")
	return cmd
}

func printIdea(w io.Writer, idea domain.Idea) {
	st := newStyles(w)
	_, _ = fmt.Fprintf(w, "ID:       %s\n", idea.ID)
	_, _ = fmt.Fprintf(w, "Text:     %s\n", idea.Text)
	_, _ = fmt.Fprintf(w, "Category: %s %s\n", st.category(idea.Category), idea.Category)
	if idea.Executed && idea.ExecutedAt != nil {
		_, _ = fmt.Fprintf(w, "State:    %s (%s)\n", st.state(true), formatTime(*idea.ExecutedAt))
	} else {
		_, _ = fmt.Fprintf(w, "State:    %s\n", st.state(false))
	}
	_, _ = fmt.Fprintf(w, "Created:  %s\n", formatTime(idea.CreatedAt))
	_, _ = fmt.Fprintf(w, "Method:   %s\n", orDash(idea.Method))
	_, _ = fmt.Fprintf(w, "Outcome:  %s\n", orDash(idea.Outcome))
}

// newIdeaFieldCommand creates a shortcut for "idea set <id> <field> <value>".
func newIdeaFieldCommand(c *app.Container, field domain.IdeaField, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(field) + " <id> <text>...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdateField(cmd, c, args[0], string(field), strings.Join(args[1:], " "))
		},
	}
}

func newIdeaSetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <field> <value>",
		Short: "Set an editable field (method or outcome)",
		Long: `Set an editable field of an idea.

Only method and outcome can be changed; text and category are fixed once
the idea is created. An empty value clears the field.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdateField(cmd, c, args[0], args[1], args[2])
		},
	}
}

func runUpdateField(cmd *cobra.Command, c *app.Container, id, field, value string) error {
	store, err := c.Store()
	if err != nil {
		return err
	}

	out, err := c.UpdateIdeaFieldUseCase(store).Execute(cmd.Context(), usecase.UpdateIdeaFieldInput{
		ID:    id,
		Field: field,
		Value: value,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s of idea %s\n", strings.ToLower(field), out.Idea.ID)
	return nil
}

func newIdeaToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Mark an idea executed, or open again",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.ToggleIdeaUseCase(store).Execute(cmd.Context(), usecase.ToggleIdeaInput{ID: args[0]})
			if err != nil {
				return err
			}

			state := "open"
			if out.Idea.Executed {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Idea %s is now %s\n", out.Idea.ID, state)
			return nil
		},
	}
}

func newIdeaDeleteCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an idea",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.DeleteIdeaUseCase(store).Execute(cmd.Context(), usecase.DeleteIdeaInput{
				ID:        args[0],
				Confirmed: yes,
			})
			if errors.Is(err, domain.ErrNotConfirmed) {
				return fmt.Errorf("%w: pass --yes to delete idea %s", err, args[0])
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted idea %s: %s\n", out.Idea.ID, out.Idea.Text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}
