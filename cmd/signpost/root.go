package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/signpost/demo"
	"github.com/xy-planning-network/signpost/ranger"
)

var rootCmd = &cobra.Command{
	Use:   "signpost",
	Short: "signpost - answer each handler by what it returns",
	Long: `signpost serves a demo controller whose handlers each return a different kind of result:
nothing, a view name, a redirect, a forward, a structured body or a full response envelope.

Configuration is read from the environment, a .env file,
or the YAML file CONFIG_PATH points at. Run "signpost env" to list every variable.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables signpost reads",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), ranger.Usage())
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

// newApp constructs the *ranger.Ranger serving the demo controller under demo.Base.
func newApp(opts ...ranger.RangerOption) (*ranger.Ranger, error) {
	opts = append([]ranger.RangerOption{ranger.WithViews(demo.Views), ranger.WithStatic(demo.Assets)}, opts...)

	rng, err := ranger.New(opts...)
	if err != nil {
		return nil, err
	}

	rt := demo.NewReturnTypes(rng.Logger)
	rng.Subrouter(strings.TrimSuffix(demo.Base, "/")).HandleRoutes(rt.Routes(rng.Controller(demo.Base)))

	return rng, nil
}
