package cli

import (
	"fmt"

	"github.com/fukuside/aidea-memo/internal/app"
	"github.com/fukuside/aidea-memo/internal/domain"
	"github.com/fukuside/aidea-memo/internal/usecase"
	"github.com/spf13/cobra"
)

func newMailCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Kind      string
		Clipboard bool
	}

	cmd := &cobra.Command{
		Use:   "mail <idea-id>",
		Short: "Hand an idea to your mail client",
		Long: `Compose a message about an idea and hand it to the mail client as a
mailto: link addressed to [mail] to.

Kinds:
  notify  the idea itself (default)
  plan    the idea and its action plan
  report  the idea, its plan, and the outcome

With --clipboard, the link is copied instead of opened.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delivery := ""
			if opts.Clipboard {
				delivery = domain.DeliveryClipboard
			}
			composer, err := c.Composer(delivery)
			if err != nil {
				return err
			}
			store, err := c.Store()
			if err != nil {
				return err
			}

			out, err := c.ComposeMessageUseCase(store, composer).Execute(cmd.Context(), usecase.ComposeMessageInput{
				IdeaID: args[0],
				Kind:   opts.Kind,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Handed off %q\n", out.Subject)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", string(domain.MessageNotify), "Message kind: notify, plan, report")
	cmd.Flags().BoolVar(&opts.Clipboard, "clipboard", false, "Copy the mailto link instead of opening it")
	return cmd
}
