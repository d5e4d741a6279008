package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/SatyaSire/corporatepm/cmd/http"
	systemcmd "github.com/SatyaSire/corporatepm/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "corporatepm",
	Short: "Backend for the Corporate PM portfolio site.",
	Long: `Corporatepm serves the portfolio website's API: contact form intake
with owner notifications, an admin view of submissions, and the scripted
portfolio chatbot.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
