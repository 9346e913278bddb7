// Package cmd wires the gmforge command tree. The bare command serves MCP
// over stdio; subcommands run one-shot queries against a project directly.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vibetools/gmforge/internal/config"
	"github.com/vibetools/gmforge/internal/server"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	projectPath string
	envFile     string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project-path", "p", "", "Path to GMS2 project (overrides config.env)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.EnvFileName, "dotenv file consulted for "+config.EnvVar)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:          "gmforge",
	Short:        "GameMaker Studio 2 project tools, served over MCP",
	Long:         `gmforge indexes GameMaker Studio 2 projects and edits their metadata files without reformatting them. Run it bare to serve the tools to an MCP client over stdio, or use the subcommands to query a project directly.`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(verbose)

		if projectPath != "" {
			if _, err := os.Stat(projectPath); err != nil {
				logger.Warn("project path does not exist", "path", projectPath)
			} else {
				logger.Info("project path configured", "path", projectPath)
			}
		}
		logger.Info("starting MCP server", "name", server.Name, "version", version)

		return server.ServeStdio(server.Config{
			ProjectPath: projectPath,
			EnvFile:     envFile,
			Version:     version,
			Log:         logger,
		})
	},
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

// resolveProject picks the project for one-shot subcommands: an explicit
// argument wins, otherwise the persistent flag and config chain apply.
func resolveProject(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return config.Resolve("", projectPath, envFile)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
