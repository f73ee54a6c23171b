package commands

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/api"
	"github.com/courier-org/courier-cli/internal/validate"
)

// NewAdminCmd creates the admin command group
func NewAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations",
	}

	cmd.AddCommand(newAdminStatsCmd())
	cmd.AddCommand(newAdminUsersCmd())
	cmd.AddCommand(newAdminAssignCmd())

	return cmd
}

func newAdminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminStats()
		},
	}
}

func runAdminStats() error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	stats, err := client.Admin.Stats(cmdContext())
	if err != nil {
		return err
	}

	w := newTabWriter()
	fmt.Fprintf(w, "PACKAGES\t%d\n", stats.TotalPackages)
	fmt.Fprintf(w, "  created\t%d\n", stats.CreatedPackages)
	fmt.Fprintf(w, "  in transit\t%d\n", stats.InTransitPackages)
	fmt.Fprintf(w, "  delivered\t%d\n", stats.DeliveredPackages)
	fmt.Fprintf(w, "  cancelled\t%d\n", stats.CancelledPackages)
	fmt.Fprintf(w, "USERS\t%d\n", stats.TotalUsers)
	fmt.Fprintf(w, "  customers\t%d\n", stats.TotalCustomers)
	fmt.Fprintf(w, "  couriers\t%d\n", stats.TotalCouriers)
	return w.Flush()
}

func newAdminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}

	cmd.AddCommand(newAdminUsersListCmd())
	cmd.AddCommand(newAdminUsersShowCmd())
	cmd.AddCommand(newAdminUsersUpdateCmd())
	cmd.AddCommand(newAdminUsersRemoveCmd())
	cmd.AddCommand(newAdminUsersRoleCmd())
	cmd.AddCommand(newAdminUsersStatusCmd())

	return cmd
}

func newAdminUsersListCmd() *cobra.Command {
	var page, size int

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersList(api.PageQuery{Page: page, Size: size})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&size, "size", 20, "Page size")

	return cmd
}

func runAdminUsersList(q api.PageQuery) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.Admin.Users(cmdContext(), q)
	if err != nil {
		return err
	}

	w := newTabWriter()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
	for _, user := range result.Content {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", user.ID, user.Name, user.Email, user.Role, user.Active)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nPage %d of %d (%d total)\n", result.Number+1, result.TotalPages, result.TotalElements)
	return nil
}

func newAdminUsersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show an account by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersShow(args[0])
		},
	}
}

func runAdminUsersShow(id string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.Admin.User(cmdContext(), id)
	if err != nil {
		return err
	}

	w := newTabWriter()
	fmt.Fprintf(w, "ID\t%s\n", user.ID)
	fmt.Fprintf(w, "NAME\t%s\n", user.Name)
	fmt.Fprintf(w, "EMAIL\t%s\n", user.Email)
	fmt.Fprintf(w, "PHONE\t%s\n", user.Phone)
	fmt.Fprintf(w, "ROLE\t%s\n", user.Role)
	fmt.Fprintf(w, "ACTIVE\t%t\n", user.Active)
	return w.Flush()
}

func newAdminUsersUpdateCmd() *cobra.Command {
	var req api.UpdateUserRequest

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersUpdate(args[0], req)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "New name")
	cmd.Flags().StringVar(&req.Email, "email", "", "New email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "New phone")

	return cmd
}

func runAdminUsersUpdate(id string, req api.UpdateUserRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.Admin.UpdateUser(cmdContext(), id, req)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	fmt.Printf("✓ Account %s updated\n", user.Email)
	return nil
}

func newAdminUsersRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersRemove(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")

	return cmd
}

func runAdminUsersRemove(id string, force bool) error {
	if !force && !confirm(fmt.Sprintf("Delete account %s", id)) {
		fmt.Println("Aborted.")
		return nil
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	if err := client.Admin.DeleteUser(cmdContext(), id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	fmt.Println("✓ Account deleted")
	return nil
}

func newAdminUsersRoleCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "role <id>",
		Short: "Change an account's role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersRole(args[0], role)
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "New role (CUSTOMER, COURIER, ADMIN)")
	cmd.MarkFlagRequired("role") //nolint:errcheck

	return cmd
}

func runAdminUsersRole(id, role string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.Admin.UpdateRole(cmdContext(), id, role)
	if err != nil {
		return fmt.Errorf("failed to change role: %w", err)
	}

	fmt.Printf("✓ %s is now %s\n", user.Email, user.Role)
	return nil
}

func newAdminUsersStatusCmd() *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Enable or disable an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminUsersStatus(args[0], active)
		},
	}

	cmd.Flags().BoolVar(&active, "active", true, "Whether the account can log in")

	return cmd
}

func runAdminUsersStatus(id string, active bool) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	user, err := client.Admin.UpdateActive(cmdContext(), id, active)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}

	state := "disabled"
	if user.Active {
		state = "active"
	}
	fmt.Printf("✓ %s is now %s\n", user.Email, state)
	return nil
}

func newAdminAssignCmd() *cobra.Command {
	var courierID string

	cmd := &cobra.Command{
		Use:   "assign <package-id>",
		Short: "Assign a courier to a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminAssign(args[0], courierID)
		},
	}

	cmd.Flags().StringVar(&courierID, "courier", "", "Courier account ID (prompted when omitted)")

	return cmd
}

func runAdminAssign(packageID, courierID string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	if courierID == "" {
		courierID, err = promptCourier(client)
		if err != nil {
			return err
		}
	}

	pkg, err := client.Admin.AssignCourier(cmdContext(), packageID, courierID)
	if err != nil {
		return fmt.Errorf("failed to assign courier: %w", err)
	}

	fmt.Printf("✓ Courier assigned to %s\n", pkg.TrackingNumber)
	return nil
}

// promptCourier lists courier accounts and lets the user pick one.
func promptCourier(client *api.Client) (string, error) {
	result, err := client.Admin.Users(cmdContext(), api.PageQuery{Size: 100})
	if err != nil {
		return "", err
	}

	var couriers []api.User
	for _, user := range result.Content {
		if user.Role == api.RoleCourier && user.Active {
			couriers = append(couriers, user)
		}
	}
	if len(couriers) == 0 {
		return "", fmt.Errorf("no active courier accounts found")
	}

	labels := make([]string, len(couriers))
	for i, c := range couriers {
		labels[i] = fmt.Sprintf("%s (%s)", c.Name, c.Email)
	}

	prompt := promptui.Select{
		Label: "Select courier",
		Items: labels,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("courier selection cancelled: %w", err)
	}
	return couriers[idx].ID, nil
}
