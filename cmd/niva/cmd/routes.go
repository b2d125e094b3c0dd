package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nivahq/niva/internal/app"
	"github.com/nivahq/niva/internal/config"
	"github.com/nivahq/niva/internal/server"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the HTTP routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			s, err := server.New(cfg, app.NewModules(cfg))
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			defer s.Shutdown(cmd.Context())

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH")
			for _, r := range s.Routes() {
				fmt.Fprintf(w, "%s\t%s\n", r.Method, r.Path)
			}
			return w.Flush()
		},
	}
}
