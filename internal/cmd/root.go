package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "topo-plan",
	Short: "WiFi mesh topology planner",
	Long: `A batch planner that, given candidate mesh nodes and candidate
links, produces a rooted spanning tree and a per-node channel plan.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "planner config file path (YAML, any subset of options)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("topo-plan version %s\n", rootCmd.Version)
	},
}
