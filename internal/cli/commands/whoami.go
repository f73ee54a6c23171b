package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

func runWhoami() error {
	sess, _, err := newSession()
	if err != nil {
		return err
	}

	// Full bootstrap: migrate legacy credentials, hydrate from the backend.
	// An invalid token demotes to anonymous rather than erroring.
	sess.Bootstrap(cmdContext())

	current := sess.Current()
	if !current.IsAuthenticated() {
		fmt.Println("Not logged in. Run 'courier login' first.")
		return nil
	}

	w := newTabWriter()
	fmt.Fprintf(w, "NAME\t%s\n", current.User.Name)
	fmt.Fprintf(w, "EMAIL\t%s\n", current.User.Email)
	fmt.Fprintf(w, "PHONE\t%s\n", current.User.Phone)
	fmt.Fprintf(w, "ROLE\t%s\n", current.User.Role)
	return w.Flush()
}
