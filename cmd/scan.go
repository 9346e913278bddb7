package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibetools/gmforge/internal/project"
	"github.com/vibetools/gmforge/internal/server"
)

var scanCmd = &cobra.Command{
	Use:   "scan [project]",
	Short: "Scan a project and print its structure",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveProject(args)
		if err != nil {
			return err
		}
		idx, err := project.Scan(root)
		if err != nil {
			return err
		}
		fmt.Println(server.ScanReport(idx))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
