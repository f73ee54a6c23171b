package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored credential and cached profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	sess, _, err := newSession()
	if err != nil {
		return err
	}

	// Local clearing only, no network call.
	sess.Logout()

	fmt.Println("✓ Logged out")
	return nil
}
