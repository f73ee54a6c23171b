package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/cli/config"
	"github.com/courier-org/courier-cli/internal/cli/envselect"
)

// NewEnvCmd creates the env command group
func NewEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage API environments",
	}

	cmd.AddCommand(newEnvListCmd())
	cmd.AddCommand(newEnvAddCmd())
	cmd.AddCommand(newEnvRemoveCmd())
	cmd.AddCommand(newEnvSelectCmd())

	return cmd
}

func newEnvListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List configured environments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvList()
		},
	}
}

func runEnvList() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(cfg.Environments) == 0 {
		fmt.Println("No environments configured.")
		fmt.Println("\nAdd one with: courier env add <name> <base-url>")
		return nil
	}

	w := newTabWriter()
	fmt.Fprintln(w, "\tNAME\tURL")
	for _, env := range cfg.Environments {
		marker := ""
		if env.Name == cfg.SelectedEnvironment {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", marker, env.Name, env.BaseURL)
	}
	return w.Flush()
}

func newEnvAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <base-url>",
		Short: "Add an environment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvAdd(args[0], args[1])
		},
	}
}

func runEnvAdd(name, baseURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for i := range cfg.Environments {
		if cfg.Environments[i].Name == name {
			cfg.Environments[i].BaseURL = baseURL
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("✓ Updated environment %s\n", name)
			return nil
		}
	}

	cfg.Environments = append(cfg.Environments, config.Environment{Name: name, BaseURL: baseURL})
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("✓ Added environment %s (%s)\n", name, baseURL)
	return nil
}

func newEnvRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove an environment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvRemove(args[0])
		},
	}
}

func runEnvRemove(name string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	kept := cfg.Environments[:0]
	found := false
	for _, env := range cfg.Environments {
		if env.Name == name {
			found = true
			continue
		}
		kept = append(kept, env)
	}
	if !found {
		return fmt.Errorf("environment %q not found in config", name)
	}

	cfg.Environments = kept
	if cfg.SelectedEnvironment == name {
		cfg.SelectedEnvironment = ""
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("✓ Removed environment %s\n", name)
	return nil
}

func newEnvSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [name]",
		Short: "Choose the environment commands talk to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runEnvSelect(name)
		},
	}
}

func runEnvSelect(name string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if name == "" {
		env, err := envselect.Prompt(cfg)
		if err != nil {
			return err
		}
		name = env.Name
	} else if _, err := cfg.GetEnvironment(name); err != nil {
		return err
	}

	if err := config.SetSelectedEnvironment(name); err != nil {
		return err
	}

	fmt.Printf("✓ Using environment %s\n", name)
	return nil
}
