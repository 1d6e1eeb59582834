package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shallerhub/internal/server"
)

// shallerhub serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// shallerhub route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The route table needs service wiring, which needs config + Mongo.
		if err := server.Boot(); err != nil {
			return err
		}

		routes := server.Routes()
		if len(routes) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		names := make([]string, 0, len(routes))
		for name := range routes {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATTERN")
		fmt.Fprintln(w, "----\t-------")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", name, routes[name])
		}
		return w.Flush()
	},
}
