package envselect

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/courier-org/courier-cli/internal/cli/config"
)

// Resolve determines which environment's base URL to use:
// 1. The --env flag, when provided
// 2. The selected environment from the config file
// 3. The only environment, when exactly one is configured
// 4. An interactive prompt when several are configured
// Configs without named environments fall back to the plain base_url entry.
func Resolve(cfg *config.Config, envFlag string) (string, error) {
	if envFlag != "" {
		env, err := cfg.GetEnvironment(envFlag)
		if err != nil {
			return "", err
		}
		return env.BaseURL, nil
	}

	if len(cfg.Environments) == 0 {
		return cfg.ResolveBaseURL(), nil
	}

	if cfg.SelectedEnvironment != "" {
		if env, err := cfg.GetEnvironment(cfg.SelectedEnvironment); err == nil {
			return env.BaseURL, nil
		}
		// Selected environment no longer exists, clear it and fall through
		_ = config.SetSelectedEnvironment("")
	}

	if len(cfg.Environments) == 1 {
		env := cfg.Environments[0]
		if err := config.SetSelectedEnvironment(env.Name); err != nil {
			fmt.Printf("Warning: failed to save selected environment: %v\n", err)
		}
		return env.BaseURL, nil
	}

	env, err := Prompt(cfg)
	if err != nil {
		return "", err
	}
	if err := config.SetSelectedEnvironment(env.Name); err != nil {
		fmt.Printf("Warning: failed to save selected environment: %v\n", err)
	}
	return env.BaseURL, nil
}

// Prompt shows an interactive picker over the configured environments.
func Prompt(cfg *config.Config) (*config.Environment, error) {
	if len(cfg.Environments) == 0 {
		return nil, fmt.Errorf("no environments configured. Run 'courier env add' first")
	}

	labels := make([]string, len(cfg.Environments))
	for i, env := range cfg.Environments {
		labels[i] = fmt.Sprintf("%s (%s)", env.Name, env.BaseURL)
	}

	prompt := promptui.Select{
		Label: "Select environment",
		Items: labels,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("environment selection cancelled: %w", err)
	}

	return &cfg.Environments[index], nil
}
