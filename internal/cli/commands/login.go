package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Courier backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set COURIER_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set COURIER_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(email, password string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("COURIER_EMAIL")
	}
	if password == "" {
		password = os.Getenv("COURIER_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or COURIER_EMAIL env var)")
	}

	if password == "" {
		var err error
		password, err = promptPassword("Password")
		if err != nil {
			return err
		}
	}

	sess, client, err := newSession()
	if err != nil {
		return err
	}

	fmt.Printf("Logging in to %s...\n", client.BaseURL())

	resp, err := sess.Login(cmdContext(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Println("✓ Login successful!")
	current := sess.Current()
	if current.User != nil {
		fmt.Printf("  User: %s (%s)\n", current.User.Name, current.User.Email)
		fmt.Printf("  Role: %s\n", current.User.Role)
	} else if resp.Name != "" {
		fmt.Printf("  User: %s\n", resp.Name)
	}

	return nil
}
