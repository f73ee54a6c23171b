package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/api"
	"github.com/courier-org/courier-cli/internal/validate"
)

// NewTrackingCmd creates the tracking command group
func NewTrackingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracking",
		Short: "Work with tracking histories",
	}

	cmd.AddCommand(newTrackingHistoryCmd())
	cmd.AddCommand(newTrackingAddEventCmd())

	return cmd
}

func newTrackingHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <tracking-number>",
		Short: "Show the event history for a tracking number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrackingHistory(args[0])
		},
	}
}

func runTrackingHistory(trackingNumber string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	events, err := client.Tracking.History(cmdContext(), trackingNumber)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No tracking events yet.")
		return nil
	}

	w := newTabWriter()
	fmt.Fprintln(w, "TIME\tSTATUS\tLOCATION\tREMARKS")
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp, e.Status, e.Location, e.Remarks)
	}
	return w.Flush()
}

func newTrackingAddEventCmd() *cobra.Command {
	var status, location, remarks string

	cmd := &cobra.Command{
		Use:   "add-event <package-id>",
		Short: "Record a tracking event (courier/admin accounts)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrackingAddEvent(args[0], api.AddEventRequest{
				Status:   status,
				Location: location,
				Remarks:  remarks,
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Event status")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Free-form remarks")
	cmd.MarkFlagRequired("status") //nolint:errcheck

	return cmd
}

func runTrackingAddEvent(packageID string, req api.AddEventRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	event, err := client.Tracking.AddEvent(cmdContext(), packageID, req)
	if err != nil {
		return fmt.Errorf("failed to add tracking event: %w", err)
	}

	fmt.Printf("✓ Event recorded: %s at %s\n", event.Status, event.Location)
	return nil
}
