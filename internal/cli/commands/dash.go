package commands

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/cli/config"
	"github.com/courier-org/courier-cli/internal/cli/envselect"
)

// NewDashCmd creates the dash command
func NewDashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Open the web dashboard in your browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash()
		},
	}
}

func runDash() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	baseURL, err := envselect.Resolve(cfg, "")
	if err != nil {
		return err
	}

	// The SPA is served from the API origin, without the /api/v1 prefix.
	dashboardURL := strings.TrimSuffix(baseURL, "/api/v1")

	fmt.Printf("Opening dashboard...\n")
	fmt.Printf("URL: %s\n", dashboardURL)

	if err := openBrowser(dashboardURL); err != nil {
		return fmt.Errorf("failed to open browser: %w\nPlease visit: %s", err, dashboardURL)
	}

	return nil
}

// openBrowser opens the URL in the default browser
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
