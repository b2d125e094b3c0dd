package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/nivahq/niva/internal/app"
	"github.com/nivahq/niva/internal/config"
	"github.com/nivahq/niva/internal/pubsub"
)

func newEventsCmd() *cobra.Command {
	events := &cobra.Command{
		Use:   "events",
		Short: "Explore the events modules publish",
		Long: `The events command lists the pub/sub topics modules register at startup.

Examples:
  # List all events
  niva events list

  # Show one event with its example payload
  niva events get preferences.draft.submitted`,
	}
	events.AddCommand(newEventsListCmd(), newEventsGetCmd())
	return events
}

func newEventsListCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered events",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			topics := catalog.List()
			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), struct {
					Topics []pubsub.Topic `json:"topics"`
					Count  int            `json:"count"`
				}{topics, len(topics)})
			case "table":
				return writeTopicsTable(cmd.OutOrStdout(), topics)
			default:
				return fmt.Errorf("unsupported output format %q, use table or json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	return cmd
}

func newEventsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <event-name>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			topic, ok := catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("event %q not found, see 'niva events list'", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:        %s\n", topic.Name)
			fmt.Fprintf(out, "Module:      %s\n", topic.Module)
			fmt.Fprintf(out, "Description: %s\n", topic.Description)
			fmt.Fprintf(out, "Example:     %s\n", topic.Example)
			return nil
		},
	}
}

// loadCatalog runs the register phase of every module, which is where
// topics are added, without booting anything.
func loadCatalog() (*pubsub.Catalog, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	injector := app.NewContainer(cfg)
	defer injector.Shutdown()

	for _, m := range app.NewModules(cfg) {
		if err := m.Register(injector); err != nil {
			return nil, fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	return do.Invoke[*pubsub.Catalog](injector)
}

func writeTopicsTable(out io.Writer, topics []pubsub.Topic) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODULE\tDESCRIPTION")
	fmt.Fprintln(w, "----\t------\t-----------")
	if len(topics) == 0 {
		fmt.Fprintln(w, "No events found")
	}
	for _, t := range topics {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Module, truncate(t.Description, 50))
	}
	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
