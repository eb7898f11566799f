package main

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/signpost/ranger"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the signpost HTTP server with the demo controller mounted under /controller/.
The server stops on SIGINT, SIGTERM, SIGHUP or SIGQUIT.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "Address to listen on, overriding PORT")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := ranger.LoadConfig()
	if err != nil {
		return err
	}

	if servePort != "" {
		cfg.Server.Port = servePort
	}

	rng, err := newApp(ranger.WithConfig(cfg), ranger.WithContext(cmd.Context()))
	if err != nil {
		return err
	}

	return rng.Guide()
}
