package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/signpost/http/router"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print every route the server answers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rng, err := newApp()
		if err != nil {
			return err
		}

		return printRoutes(cmd.OutOrStdout(), rng.Routes())
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func printRoutes(w io.Writer, routes []router.RouteInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH")
	for _, ri := range routes {
		fmt.Fprintf(tw, "%s\t%s\n", ri.Method, ri.Path)
	}

	return tw.Flush()
}
