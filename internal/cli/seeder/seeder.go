// Package seeder implements the operator CLI that registers drivers out of band.
package seeder

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"freight-booking/internal/domain"
)

// Registry is the driver registry the CLI writes to.
type Registry interface {
	Create(ctx context.Context, d *domain.Driver) (int64, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Driver, error)
}

// File is the TOML document accepted by "drivers load".
type File struct {
	Drivers []DriverEntry `toml:"drivers"`
}

// DriverEntry is one [[drivers]] table.
type DriverEntry struct {
	Name          string `toml:"name"`
	Phone         string `toml:"phone_number"`
	LicenseNumber string `toml:"license_number"`
}

// ParseDrivers decodes a drivers TOML document. Unknown keys are rejected.
func ParseDrivers(r io.Reader) ([]domain.Driver, error) {
	var f File
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode drivers: %w", err)
	}
	out := make([]domain.Driver, 0, len(f.Drivers))
	for _, e := range f.Drivers {
		out = append(out, domain.Driver{Name: e.Name, Phone: e.Phone, LicenseNumber: e.LicenseNumber})
	}
	return out, nil
}

// NewRootCmd builds the seeder command tree bound to reg.
func NewRootCmd(reg Registry) *cobra.Command {
	root := &cobra.Command{
		Use:           "seeder",
		Short:         "Manage freight-booking reference data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	drivers := &cobra.Command{
		Use:   "drivers",
		Short: "Manage registered drivers",
	}
	drivers.AddCommand(newLoadCmd(reg), newListCmd(reg))
	root.AddCommand(drivers)
	return root
}

func newLoadCmd(reg Registry) *cobra.Command {
	var (
		file            string
		continueOnError bool
	)
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Register drivers from a TOML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			list, err := ParseDrivers(f)
			if err != nil {
				return err
			}

			created, failed := 0, 0
			for i := range list {
				d := list[i]
				id, err := reg.Create(cmd.Context(), &d)
				if err != nil {
					failed++
					cmd.PrintErrf("driver %q (%s): %v\n", d.Name, d.LicenseNumber, err)
					if !continueOnError {
						return fmt.Errorf("load stopped after %d drivers: %w", created, err)
					}
					continue
				}
				created++
				cmd.Printf("created driver %d %s\n", id, d.Name)
			}
			cmd.Printf("%d created, %d failed\n", created, failed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "drivers.toml", "TOML file with [[drivers]] tables")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "skip drivers that cannot be created")
	return cmd
}

func newListCmd(reg Registry) *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered drivers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var lp, op *int
			if cmd.Flags().Changed("limit") {
				lp = &limit
			}
			if cmd.Flags().Changed("offset") {
				op = &offset
			}
			list, err := reg.List(cmd.Context(), lp, op)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPHONE\tLICENSE\tAVAILABLE")
			for _, d := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", d.ID, d.Name, d.Phone, d.LicenseNumber, d.Available)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of drivers")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of drivers to skip")
	return cmd
}
