package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/internal/profile"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the system prompt sent with every chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := profile.LoadSystemPrompt(cmd.Context(), profile.Default, GetConfig().Relay.SystemPromptFile)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
