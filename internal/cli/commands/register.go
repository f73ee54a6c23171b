package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/api"
	"github.com/courier-org/courier-cli/internal/validate"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var name, email, phone, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(name, email, phone, password)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")

	return cmd
}

func runRegister(name, email, phone, password string) error {
	if password == "" {
		var err error
		password, err = promptPassword("Password")
		if err != nil {
			return err
		}
	}

	req := api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Auth.Register(cmdContext(), req)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("✓ Account created for %s (%s)\n", resp.Name, resp.Email)
	fmt.Println("Run 'courier login' to sign in.")
	return nil
}
