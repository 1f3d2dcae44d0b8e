package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/ui"
)

var (
	historyLimit int
	clearForce   bool
)

// historyCmd shows a session's messages
var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "show a chat session's history",
	Long: `Show a chat session's messages, oldest first.

Without arguments, shows the session of the last 'shopctl chat' run.`,
	Example: `  # Show the last session
  $ shopctl history

  # Show a specific session
  $ shopctl history my-session

  # Show more messages
  $ shopctl history my-session --limit 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

// clearCmd purges a session
var clearCmd = &cobra.Command{
	Use:   "clear [session-id]",
	Short: "delete a chat session's history",
	Example: `  # Clear the last session
  $ shopctl clear

  # Clear a specific session without confirmation
  $ shopctl clear my-session --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClear,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Max messages to fetch")
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip confirmation prompt")

	historyCmd.SilenceUsage = true
	clearCmd.SilenceUsage = true
}

// resolveSession picks the explicit argument or falls back to the
// session stored by the last chat run.
func resolveSession(args []string, stored string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if stored == "" {
		ui.PrintError("no session id given and no previous chat session found")
		fmt.Println("\nRun 'shopctl chat' first, or pass a session id.")
		return "", fmt.Errorf("session required")
	}
	return stored, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, cfg, err := newClient()
	if err != nil {
		return err
	}

	sessionID, err := resolveSession(args, cfg.SessionID)
	if err != nil {
		return err
	}

	history, err := apiClient.GetHistory(ctx, sessionID, historyLimit)
	if err != nil {
		ui.PrintError("failed to fetch history: %v", err)
		return fmt.Errorf("history operation failed")
	}

	if len(history) == 0 {
		ui.PrintInfo("Session '%s' has no messages", sessionID)
		return nil
	}

	fmt.Println()
	for _, item := range history {
		fmt.Println(ui.RenderChatTurn(item))
	}
	fmt.Printf("\n%d message(s) in session '%s'\n", len(history), sessionID)

	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, cfg, err := newClient()
	if err != nil {
		return err
	}

	sessionID, err := resolveSession(args, cfg.SessionID)
	if err != nil {
		return err
	}

	if !clearForce {
		confirm := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete all messages of session '%s'?", sessionID),
		}
		if err := survey.AskOne(prompt, &confirm); err != nil {
			return fmt.Errorf("confirmation prompt failed: %w", err)
		}

		if !confirm {
			ui.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	deleted, err := apiClient.ClearHistory(ctx, sessionID)
	if err != nil {
		ui.PrintError("failed to clear history: %v", err)
		return fmt.Errorf("clear operation failed")
	}

	ui.PrintSuccess("Deleted %d message(s) from session '%s'", deleted, sessionID)
	return nil
}
