package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/ui"
)

var chatSession string

// chatCmd starts an interactive conversation
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "start an interactive chat with the shopping assistant",
	Long: `Start an interactive chat session with the AI shopping assistant.

Each invocation starts a fresh session unless --session names an
existing one. The session id is stored so 'shopctl history' without
arguments shows the last conversation.`,
	Example: `  # Start a new chat session
  $ shopctl chat

  # Continue an existing session
  $ shopctl chat --session my-session

  # Type 'exit' or press Ctrl+C to leave`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatSession, "session", "", "Session id (default: a new random session)")

	chatCmd.SilenceUsage = true
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Println("\nRun 'shopctl chat' to start an interactive session.")
		return fmt.Errorf("invalid arguments")
	}

	apiClient, cfg, err := newClient()
	if err != nil {
		return err
	}

	sessionID := chatSession
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	cfg.SessionID = sessionID
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
	}

	ui.PrintBold("🛍  Asistente de compras")
	ui.PrintInfo("Session: %s", sessionID)
	fmt.Println("Escribe tu mensaje, o 'exit' para salir.")
	fmt.Println()

	for {
		var message string
		prompt := &survey.Input{Message: "Tú:"}
		if err := survey.AskOne(prompt, &message); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				fmt.Println("\n¡Hasta luego!")
				return nil
			}
			return fmt.Errorf("input prompt failed: %w", err)
		}

		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if message == "exit" || message == "salir" {
			fmt.Println("¡Hasta luego!")
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		resp, err := apiClient.Chat(ctx, sessionID, message)
		cancel()
		if err != nil {
			ui.PrintError("chat failed: %v", err)
			continue
		}

		fmt.Println(ui.Styles.Assistant.Render("Asistente: ") + resp.AssistantMessage)
		fmt.Println()
	}
}
