package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/commands"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			ui.PrintError("%s", errMsg)
			fmt.Println("\nRun 'shopctl --help' for usage.")
		}
		os.Exit(1)
	}
}
