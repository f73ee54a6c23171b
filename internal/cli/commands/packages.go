package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courier-org/courier-cli/internal/api"
	"github.com/courier-org/courier-cli/internal/validate"
)

// NewPackagesCmd creates the packages command group
func NewPackagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packages",
		Aliases: []string{"pkg"},
		Short:   "Manage shipments",
	}

	cmd.AddCommand(newPackagesListCmd())
	cmd.AddCommand(newPackagesShowCmd())
	cmd.AddCommand(newPackagesCreateCmd())
	cmd.AddCommand(newPackagesStatusCmd())
	cmd.AddCommand(newPackagesCancelCmd())
	cmd.AddCommand(newPackagesPriceCmd())

	return cmd
}

func newPackagesListCmd() *cobra.Command {
	var all bool
	var page, size int
	var sortBy, sortDir string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your shipments (or all with --all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackagesList(all, api.PageQuery{Page: page, Size: size, SortBy: sortBy, SortDir: sortDir})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List all shipments (admin/courier accounts)")
	cmd.Flags().IntVar(&page, "page", 0, "Page number (with --all)")
	cmd.Flags().IntVar(&size, "size", 10, "Page size (with --all)")
	cmd.Flags().StringVar(&sortBy, "sort", "createdAt", "Sort field (with --all)")
	cmd.Flags().StringVar(&sortDir, "dir", "desc", "Sort direction (with --all)")

	return cmd
}

func runPackagesList(all bool, q api.PageQuery) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	var pkgs []api.Package
	if all {
		result, err := client.Packages.List(cmdContext(), q)
		if err != nil {
			return err
		}
		pkgs = result.Content
		defer fmt.Printf("\nPage %d of %d (%d total)\n", result.Number+1, result.TotalPages, result.TotalElements)
	} else {
		pkgs, err = client.Packages.Mine(cmdContext())
		if err != nil {
			return err
		}
	}

	if len(pkgs) == 0 {
		fmt.Println("No shipments found.")
		fmt.Println("\nCreate one with: courier packages create --file shipment.yaml")
		return nil
	}

	w := newTabWriter()
	fmt.Fprintln(w, "TRACKING\tSTATUS\tTYPE\tWEIGHT\tTO\tAMOUNT")
	for _, pkg := range pkgs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fkg\t%s\t%.2f\n",
			pkg.TrackingNumber, pkg.Status, pkg.PackageType, pkg.Weight,
			shortAddress(pkg.Receiver.Address), pkg.Amount)
	}
	return w.Flush()
}

func newPackagesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a shipment by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackagesShow(args[0])
		},
	}
}

func runPackagesShow(id string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	pkg, err := client.Packages.Get(cmdContext(), id)
	if err != nil {
		return err
	}

	w := newTabWriter()
	fmt.Fprintf(w, "ID\t%s\n", pkg.ID)
	fmt.Fprintf(w, "TRACKING\t%s\n", pkg.TrackingNumber)
	fmt.Fprintf(w, "STATUS\t%s\n", pkg.Status)
	fmt.Fprintf(w, "TYPE\t%s\n", pkg.PackageType)
	fmt.Fprintf(w, "WEIGHT\t%.1fkg\n", pkg.Weight)
	fmt.Fprintf(w, "SENDER\t%s (%s)\n", pkg.Sender.Name, shortAddress(pkg.Sender.Address))
	fmt.Fprintf(w, "RECEIVER\t%s (%s)\n", pkg.Receiver.Name, shortAddress(pkg.Receiver.Address))
	fmt.Fprintf(w, "AMOUNT\t%.2f\n", pkg.Amount)
	fmt.Fprintf(w, "PAID\t%t\n", pkg.Paid)
	fmt.Fprintf(w, "CREATED\t%s\n", pkg.CreatedAt)
	if pkg.DeliveredAt != "" {
		fmt.Fprintf(w, "DELIVERED\t%s\n", pkg.DeliveredAt)
	}
	return w.Flush()
}

func newPackagesCreateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a new shipment from a YAML/JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackagesCreate(file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Shipment manifest (YAML or JSON)")
	cmd.MarkFlagRequired("file") //nolint:errcheck

	return cmd
}

func runPackagesCreate(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read shipment file: %w", err)
	}

	req, err := parseShipmentManifest(data)
	if err != nil {
		return err
	}
	if err := validate.Struct(req); err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	pkg, err := client.Packages.Create(cmdContext(), *req)
	if err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	fmt.Println("✓ Shipment created")
	fmt.Printf("  Tracking number: %s\n", pkg.TrackingNumber)
	fmt.Printf("  Amount: %.2f\n", pkg.Amount)
	return nil
}

func newPackagesStatusCmd() *cobra.Command {
	var status, location, remarks, otp string

	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Update a shipment's status (courier/admin accounts)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackagesStatus(args[0], api.UpdateStatusRequest{
				Status:   status,
				Location: location,
				Remarks:  remarks,
				OTP:      otp,
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (e.g. IN_TRANSIT, DELIVERED)")
	cmd.Flags().StringVar(&location, "location", "", "Current location")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Free-form remarks")
	cmd.Flags().StringVar(&otp, "otp", "", "Delivery OTP (required for DELIVERED)")
	cmd.MarkFlagRequired("status") //nolint:errcheck

	return cmd
}

func runPackagesStatus(id string, req api.UpdateStatusRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	pkg, err := client.Packages.UpdateStatus(cmdContext(), id, req)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	fmt.Printf("✓ %s is now %s\n", pkg.TrackingNumber, pkg.Status)
	return nil
}

func newPackagesCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackagesCancel(args[0])
		},
	}
}

func runPackagesCancel(id string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	pkg, err := client.Packages.Cancel(cmdContext(), id)
	if err != nil {
		return fmt.Errorf("failed to cancel shipment: %w", err)
	}

	fmt.Printf("✓ %s cancelled\n", pkg.TrackingNumber)
	return nil
}

func newPackagesPriceCmd() *cobra.Command {
	var weight float64
	var packageType string

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Get a shipping quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackagesPrice(api.PriceRequest{Weight: weight, PackageType: packageType})
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&packageType, "type", "", "Service type (NORMAL_POST, SPEED_POST, EXPRESS, OVERNIGHT)")
	cmd.MarkFlagRequired("weight") //nolint:errcheck
	cmd.MarkFlagRequired("type")   //nolint:errcheck

	return cmd
}

func runPackagesPrice(req api.PriceRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	quote, err := client.Packages.CalculatePrice(cmdContext(), req)
	if err != nil {
		return fmt.Errorf("failed to calculate price: %w", err)
	}

	w := newTabWriter()
	fmt.Fprintf(w, "BASE\t%.2f\n", quote.BasePrice)
	fmt.Fprintf(w, "WEIGHT CHARGE\t%.2f\n", quote.WeightCharge)
	fmt.Fprintf(w, "TOTAL\t%.2f\n", quote.TotalAmount)
	return w.Flush()
}
