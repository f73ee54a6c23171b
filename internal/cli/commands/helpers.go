package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"

	"github.com/courier-org/courier-cli/internal/api"
	"github.com/courier-org/courier-cli/internal/cli/config"
	"github.com/courier-org/courier-cli/internal/cli/envselect"
	"github.com/courier-org/courier-cli/internal/credstore"
	"github.com/courier-org/courier-cli/internal/logger"
	"github.com/courier-org/courier-cli/internal/session"
)

// newStack builds the layered credential store: OS keyring first, the
// pre-keyring credentials file as the legacy fallback.
func newStack() (*credstore.Stack, error) {
	legacyPath, err := config.LegacyCredentialsPath()
	if err != nil {
		return nil, err
	}
	return credstore.NewStack(credstore.NewKeyring(), credstore.NewFile(legacyPath)), nil
}

// newClient builds an API client against the resolved environment.
func newClient() (*api.Client, *credstore.Stack, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	baseURL, err := envselect.Resolve(cfg, "")
	if err != nil {
		return nil, nil, err
	}

	stack, err := newStack()
	if err != nil {
		return nil, nil, err
	}

	return api.New(baseURL, stack, logger.GetLogger()), stack, nil
}

// newSession builds the session store plus the client it hydrates through.
func newSession() (*session.Store, *api.Client, error) {
	client, stack, err := newClient()
	if err != nil {
		return nil, nil, err
	}
	return session.New(stack, client.Auth), client, nil
}

// cmdContext is the context for one-shot command requests. Timeouts are left
// to the HTTP client.
func cmdContext() context.Context {
	return context.Background()
}

// promptPassword reads a password without echo when stdin is a terminal.
func promptPassword(label string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("password is required in non-interactive mode (use the flag or env var)")
	}
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println() // New line after password input
	return string(raw), nil
}

// confirm asks for explicit confirmation before a destructive action.
func confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return false
	}
	return true
}

// newTabWriter returns a tabwriter on stdout with the shared layout.
func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
}

// shortAddress renders a compact one-line address.
func shortAddress(a api.Address) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.City, a.State, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
