package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNotificationsCmd creates the notifications command
func NewNotificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "List your notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotifications()
		},
	}
}

func runNotifications() error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	notifications, err := client.Notifications.List(cmdContext())
	if err != nil {
		return err
	}

	if len(notifications) == 0 {
		fmt.Println("No notifications.")
		return nil
	}

	w := newTabWriter()
	fmt.Fprintln(w, "TIME\tSUBJECT\tBODY")
	for _, n := range notifications {
		fmt.Fprintf(w, "%s\t%s\t%s\n", n.Timestamp, n.Subject, n.Body)
	}
	return w.Flush()
}
