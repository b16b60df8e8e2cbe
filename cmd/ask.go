package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/internal/model"
	"portfolio/internal/server"
	"portfolio/internal/service"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Send one message through the chat relay",
	Long: `Send a single message through the same relay the server uses and print
the reply. Useful for checking the API key and model without starting the server.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	relay, err := server.NewRelay(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}

	resp, err := relay.Chat(cmd.Context(), model.NewChatRequest(args[0]))
	if err != nil {
		var relayErr *service.RelayError
		if errors.As(err, &relayErr) {
			return fmt.Errorf("%d %s", relayErr.Status, relayErr.Message)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Response)
	return nil
}
