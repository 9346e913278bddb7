package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vibetools/gmforge/internal/export"
	"github.com/vibetools/gmforge/internal/project"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [project]",
	Short: "Export every GML and YY file as one text bundle",
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
		data := export.All(idx)

		if exportOut == "" {
			fmt.Print(data)
			return nil
		}
		if err := os.WriteFile(exportOut, []byte(data), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		newLogger(verbose).Info("export written", "file", exportOut, "bytes", len(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write the bundle to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
