package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/api"
)

// NewHubsCmd creates the hubs command group
func NewHubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hubs",
		Short: "Manage sorting hubs (admin accounts)",
	}

	cmd.AddCommand(newHubsListCmd())
	cmd.AddCommand(newHubsShowCmd())
	cmd.AddCommand(newHubsCreateCmd())
	cmd.AddCommand(newHubsUpdateCmd())
	cmd.AddCommand(newHubsRemoveCmd())
	cmd.AddCommand(newHubsImportCmd())

	return cmd
}

func newHubsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List hubs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHubsList()
		},
	}
}

func runHubsList() error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	hubs, err := client.Hubs.List(cmdContext())
	if err != nil {
		return err
	}

	if len(hubs) == 0 {
		fmt.Println("No hubs found.")
		return nil
	}

	w := newTabWriter()
	fmt.Fprintln(w, "CODE\tNAME\tLOCATION\tLOAD\tACTIVE")
	for _, hub := range hubs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%t\n",
			hub.Code, hub.Name, hub.Location, hub.CurrentLoad, hub.Capacity, hub.Active)
	}
	return w.Flush()
}

func newHubsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a hub by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHubsShow(args[0])
		},
	}
}

func runHubsShow(id string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	hub, err := client.Hubs.Get(cmdContext(), id)
	if err != nil {
		return err
	}

	w := newTabWriter()
	fmt.Fprintf(w, "ID\t%s\n", hub.ID)
	fmt.Fprintf(w, "CODE\t%s\n", hub.Code)
	fmt.Fprintf(w, "NAME\t%s\n", hub.Name)
	fmt.Fprintf(w, "LOCATION\t%s\n", hub.Location)
	fmt.Fprintf(w, "ADDRESS\t%s\n", shortAddress(hub.Address))
	if hub.ManagerName != "" {
		fmt.Fprintf(w, "MANAGER\t%s (%s)\n", hub.ManagerName, hub.ManagerPhone)
	}
	fmt.Fprintf(w, "LOAD\t%d/%d\n", hub.CurrentLoad, hub.Capacity)
	fmt.Fprintf(w, "ACTIVE\t%t\n", hub.Active)
	return w.Flush()
}

func hubFlags(cmd *cobra.Command, hub *api.Hub) {
	cmd.Flags().StringVar(&hub.Code, "code", "", "Short hub code (e.g. PNQ1)")
	cmd.Flags().StringVar(&hub.Name, "name", "", "Hub name")
	cmd.Flags().StringVar(&hub.Location, "location", "", "City or area")
	cmd.Flags().StringVar(&hub.Address.Line1, "line1", "", "Address line 1")
	cmd.Flags().StringVar(&hub.Address.City, "city", "", "City")
	cmd.Flags().StringVar(&hub.Address.State, "state", "", "State")
	cmd.Flags().StringVar(&hub.Address.Country, "country", "", "Country")
	cmd.Flags().StringVar(&hub.Address.Pincode, "pincode", "", "Postal code")
	cmd.Flags().StringVar(&hub.ManagerName, "manager", "", "Manager name")
	cmd.Flags().StringVar(&hub.ManagerPhone, "manager-phone", "", "Manager phone")
	cmd.Flags().Int64Var(&hub.Capacity, "capacity", 0, "Package capacity")
}

func newHubsCreateCmd() *cobra.Command {
	hub := api.Hub{Active: true}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new hub",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHubsCreate(hub)
		},
	}

	hubFlags(cmd, &hub)
	cmd.MarkFlagRequired("code") //nolint:errcheck
	cmd.MarkFlagRequired("name") //nolint:errcheck

	return cmd
}

func runHubsCreate(hub api.Hub) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	created, err := client.Hubs.Create(cmdContext(), hub)
	if err != nil {
		return fmt.Errorf("failed to create hub: %w", err)
	}

	fmt.Printf("✓ Hub %s (%s) created\n", created.Code, created.Name)
	return nil
}

func newHubsUpdateCmd() *cobra.Command {
	var hub api.Hub
	var active bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a hub",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hub.Active = active
			return runHubsUpdate(args[0], hub)
		},
	}

	hubFlags(cmd, &hub)
	cmd.Flags().BoolVar(&active, "active", true, "Whether the hub accepts packages")

	return cmd
}

func runHubsUpdate(id string, hub api.Hub) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	updated, err := client.Hubs.Update(cmdContext(), id, hub)
	if err != nil {
		return fmt.Errorf("failed to update hub: %w", err)
	}

	fmt.Printf("✓ Hub %s updated\n", updated.Code)
	return nil
}

func newHubsRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a hub",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHubsRemove(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}

func runHubsRemove(id string, force bool) error {
	if !force && !confirm(fmt.Sprintf("Remove hub %s", id)) {
		fmt.Println("Aborted.")
		return nil
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Hubs.Delete(cmdContext(), id); err != nil {
		return fmt.Errorf("failed to remove hub: %w", err)
	}

	fmt.Println("✓ Hub removed")
	return nil
}

func newHubsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Bulk-create hubs from a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHubsImport(args[0])
		},
	}
}

func runHubsImport(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	hubs, err := parseHubManifest(data)
	if err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	var failed int
	for _, hub := range hubs {
		created, err := client.Hubs.Create(cmdContext(), hub)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", hub.Code, err)
			continue
		}
		fmt.Printf("✓ %s (%s)\n", created.Code, created.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d hubs failed to import", failed, len(hubs))
	}
	fmt.Printf("\nImported %d hubs.\n", len(hubs))
	return nil
}
