package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atomicstack/loandesk/internal/config"
	"github.com/atomicstack/loandesk/internal/data/seed"
	"github.com/atomicstack/loandesk/internal/format/table"
	"github.com/atomicstack/loandesk/internal/listing"
	"github.com/atomicstack/loandesk/internal/logging/events"
	"github.com/atomicstack/loandesk/internal/menu"
)

var loadDataset = seed.LoadFile

func loadRegistry(cfg *config.Config) (*menu.Registry, error) {
	ds, err := loadDataset(cfg.App.DataPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return menu.BuildRegistry(ds), nil
}

func sectionsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the dashboard sections",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			events.App.Headless("sections", args)
			registry, err := loadRegistry(cfg)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(registry.Sections()))
			for _, s := range registry.Sections() {
				rows = append(rows, []string{s.ID, s.Icon + " " + s.Label, strconv.Itoa(s.View.Len())})
			}
			header, lines := table.WithHeader(
				[]string{"ID", "SECTION", "RECORDS"},
				rows,
				[]table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight},
			)
			return writeLines(c.OutOrStdout(), append([]string{header}, lines...))
		},
	}
}

func showCmd(cfg *config.Config) *cobra.Command {
	var query listing.Query

	cmd := &cobra.Command{
		Use:   "show SECTION",
		Short: "Print a section's summary and records",
		Long: "Print a section's summary cards and its records, optionally narrowed by a\n" +
			"case-insensitive search and a category filter. Unknown sections fall back\n" +
			"to " + menu.DefaultSection + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			events.App.Headless("show", args)
			registry, err := loadRegistry(cfg)
			if err != nil {
				return err
			}
			section, ok := registry.Find(args[0])
			if !ok {
				section = registry.Default()
				fmt.Fprintf(c.ErrOrStderr(), "unknown section %q, showing %s\n", args[0], section.ID)
			}
			return writeLines(c.OutOrStdout(), renderSection(section, query))
		},
	}
	cmd.Flags().StringVarP(&query.Search, "search", "q", "", "case-insensitive search text")
	cmd.Flags().StringVarP(&query.Category, "filter", "f", listing.All, "category to show ("+listing.All+" for every record)")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the built-in dataset as YAML, a starting point for --data",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			events.App.Headless("seed", args)
			_, err := c.OutOrStdout().Write(seed.Raw())
			return err
		},
	}
}

// renderSection lays a section out the way the list screen does, without
// styling.
func renderSection(section *menu.Section, q listing.Query) []string {
	view := section.View
	lines := []string{section.Icon + " " + section.Label, section.Subtitle(), ""}

	stats := view.Stats()
	if len(stats) > 0 {
		rows := make([][]string, len(stats))
		for i, stat := range stats {
			rows[i] = []string{stat.Label, stat.Display()}
		}
		lines = append(lines, table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})...)
		lines = append(lines, "")
	}
	if cats := view.Categories(); len(cats) > 0 {
		lines = append(lines, "Filter: "+strings.Join(cats, " · "), "")
	}

	rows := view.Rows(q)
	if len(rows) == 0 {
		switch {
		case q.Search != "":
			return append(lines, fmt.Sprintf("No matches for %q", q.Search))
		case q.Active():
			return append(lines, fmt.Sprintf("No %s entries", q.Category))
		}
		return append(lines, "(no entries)")
	}
	lines = append(lines, view.Header())
	for _, row := range rows {
		lines = append(lines, row.Label)
	}
	return append(lines, "", fmt.Sprintf("%d of %d records", len(rows), view.Len()))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
