// Command nt reads, checks, and converts NestedText documents.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "nt",
})

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nt",
	Short: "nt reads, checks, and converts NestedText documents.",
	Long: "nt is a tool for working with NestedText documents. It can validate a\n" +
		"document, convert it to JSON, and produce NestedText from JSON, TOML,\n" +
		"or YAML input.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nt v0.1.0")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd, toJSONCmd, fromCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err.Error())
	}
}
