package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/api"
)

// NewProfileCmd creates the profile command group
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}

	cmd.AddCommand(newProfileShowCmd())
	cmd.AddCommand(newProfileUpdateCmd())

	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileShow()
		},
	}
}

func runProfileShow() error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.Users.Profile(cmdContext())
	if err != nil {
		return err
	}

	w := newTabWriter()
	fmt.Fprintf(w, "NAME\t%s\n", user.Name)
	fmt.Fprintf(w, "EMAIL\t%s\n", user.Email)
	fmt.Fprintf(w, "PHONE\t%s\n", user.Phone)
	fmt.Fprintf(w, "ROLE\t%s\n", user.Role)
	return w.Flush()
}

func newProfileUpdateCmd() *cobra.Command {
	var req api.UpdateProfileRequest

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Name == "" && req.Phone == "" {
				return fmt.Errorf("nothing to update (use --name or --phone)")
			}
			return runProfileUpdate(req)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "New name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "New phone")

	return cmd
}

func runProfileUpdate(req api.UpdateProfileRequest) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.Users.UpdateProfile(cmdContext(), req)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	fmt.Printf("✓ Profile updated (%s)\n", user.Name)
	return nil
}
