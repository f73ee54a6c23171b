package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/api"
	"github.com/courier-org/courier-cli/internal/cache"
	"github.com/courier-org/courier-cli/internal/cli/config"
	"github.com/courier-org/courier-cli/internal/logger"
	"github.com/courier-org/courier-cli/internal/tui"
)

const cacheRetention = 30 * 24 * time.Hour

// NewTrackCmd creates the track command
func NewTrackCmd() *cobra.Command {
	var offline, follow bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "track <tracking-number>",
		Short: "Track a package by tracking number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(args[0], offline, follow, interval)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Show the last cached result without contacting the backend")
	cmd.Flags().BoolVar(&follow, "follow", false, "Keep the view open and poll for updates")
	cmd.Flags().DurationVar(&interval, "interval", 15*time.Second, "Poll interval for --follow")

	return cmd
}

func runTrack(trackingNumber string, offline, follow bool, interval time.Duration) error {
	if offline && follow {
		return fmt.Errorf("--offline and --follow are mutually exclusive")
	}

	if offline {
		return runTrackOffline(trackingNumber)
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	if follow {
		return tui.RunFollow(client, trackingNumber, interval)
	}

	pkg, err := client.Packages.Track(cmdContext(), trackingNumber)
	if err != nil {
		return fmt.Errorf("failed to track package: %w", err)
	}
	events, err := client.Tracking.History(cmdContext(), trackingNumber)
	if err != nil {
		return fmt.Errorf("failed to load tracking history: %w", err)
	}

	saveSnapshot(pkg, events)
	printTracking(pkg, events)
	return nil
}

func runTrackOffline(trackingNumber string) error {
	c, err := openCache()
	if err != nil {
		return err
	}

	snapshot, events, err := c.Latest(trackingNumber)
	if err != nil {
		if errors.Is(err, cache.ErrNoSnapshot) {
			return fmt.Errorf("no cached result for %s; run 'courier track %s' online first", trackingNumber, trackingNumber)
		}
		return err
	}

	fmt.Printf("Cached result from %s\n\n", snapshot.FetchedAt.Format(time.RFC1123))
	printTracking(&api.Package{TrackingNumber: snapshot.TrackingNumber, Status: snapshot.Status}, events)
	return nil
}

func openCache() (*cache.Cache, error) {
	path, err := config.CachePath()
	if err != nil {
		return nil, err
	}
	return cache.Open(path)
}

// saveSnapshot caches a successful lookup. Cache trouble never fails the
// command; tracking output is the point.
func saveSnapshot(pkg *api.Package, events []api.TrackingEvent) {
	log := logger.GetLogger()
	c, err := openCache()
	if err != nil {
		log.Debug().Err(err).Msg("cache unavailable")
		return
	}
	if err := c.Save(pkg, events); err != nil {
		log.Debug().Err(err).Msg("failed to cache snapshot")
		return
	}
	if err := c.Prune(cacheRetention); err != nil {
		log.Debug().Err(err).Msg("failed to prune cache")
	}
}

func printTracking(pkg *api.Package, events []api.TrackingEvent) {
	fmt.Printf("Package %s: %s\n", pkg.TrackingNumber, pkg.Status)
	if from := shortAddress(pkg.Sender.Address); from != "" {
		fmt.Printf("  From: %s\n", from)
	}
	if to := shortAddress(pkg.Receiver.Address); to != "" {
		fmt.Printf("  To:   %s\n", to)
	}

	if len(events) == 0 {
		fmt.Println("\nNo tracking events yet.")
		return
	}

	fmt.Println()
	w := newTabWriter()
	fmt.Fprintln(w, "TIME\tSTATUS\tLOCATION\tREMARKS")
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ev.Timestamp, ev.Status, ev.Location, ev.Remarks)
	}
	w.Flush()
}
