package commands

import (
	"fmt"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/client"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/config"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/cli/ui"
)

// newClient builds the API client from the stored config, honoring the
// --server override.
func newClient() (*client.APIClient, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, nil, fmt.Errorf("config load failed")
	}

	server := cfg.Server
	if serverFlag != "" {
		server = serverFlag
	}

	apiClient, err := client.NewAPIClient(server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, nil, fmt.Errorf("client creation failed")
	}

	return apiClient, cfg, nil
}
