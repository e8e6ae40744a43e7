package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCommand(opts *options) *cobra.Command {
	var showIntent bool

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Answer a single message",
		Long: `Ask sends one message to the assistant and prints the reply.

Example:
  horizonbot ask --seed catalog.yaml "2bhk in sg highway under 50 lakhs"
  horizonbot ask --dsn postgres://localhost/horizon "market insights"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, closeStore, err := opts.newChatService(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeStore()

			resp, err := chat.Reply(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("reply failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if showIntent {
				fmt.Fprintf(out, "[%s]\n", resp.Intent)
			}
			fmt.Fprintln(out, opts.render(resp.Response))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIntent, "intent", false, "print the detected intent before the reply")
	return cmd
}
