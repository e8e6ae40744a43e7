package cli

import (
	"bufio"
	"fmt"
	"strings"

	"horizonbot/internal/model"

	"github.com/spf13/cobra"
)

func newChatCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Chat reads one message per line from stdin and prints each reply.
The session ends at end of input or after a farewell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chat, closeStore, err := opts.newChatService(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeStore()

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprint(out, "> ")
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					fmt.Fprint(out, "> ")
					continue
				}

				resp, err := chat.Reply(cmd.Context(), line)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
					fmt.Fprint(out, "> ")
					continue
				}
				fmt.Fprintf(out, "%s\n\n", opts.render(resp.Response))
				if resp.Intent == model.IntentFarewell {
					return nil
				}
				fmt.Fprint(out, "> ")
			}
			return scanner.Err()
		},
	}
}
