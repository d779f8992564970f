// Command wrend runs a standalone wren server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wrenhttp/wren"
)

var (
	flagConfig   string
	flagPort     string
	flagRoot     string
	flagNetModel string
)

var rootCmd = &cobra.Command{
	Use:   "wrend",
	Short: "wrend serves static files over HTTP/1.x",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := wren.DefaultConfig()
		if flagConfig != "" {
			loaded, err := wren.LoadConfigFile(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if flagPort != "" {
			cfg.Port = flagPort
		}
		if flagRoot != "" {
			cfg.RootPath = flagRoot
		}
		if flagNetModel != "" {
			cfg.NetModel = wren.ParseNetModel(flagNetModel)
		}
		return wren.New(cfg).Run()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to the YAML configuration file")
	rootCmd.Flags().StringVarP(&flagPort, "port", "p", "", "server port (default: 9999)")
	rootCmd.Flags().StringVarP(&flagRoot, "root", "r", "", "static file root directory")
	rootCmd.Flags().StringVarP(&flagNetModel, "net-model", "m", "", "connection engine: multithread or event-poll")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
