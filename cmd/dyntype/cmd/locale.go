package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/go-drift/dyntype/pkg/config"
	"github.com/go-drift/dyntype/pkg/dyntype"
	"github.com/go-drift/dyntype/pkg/locale"
	"github.com/go-drift/dyntype/pkg/picker"
)

type localeOptions struct {
	list     bool
	category string
}

func addLocale(topLevel *cobra.Command, root *rootOptions) {
	o := &localeOptions{}
	cmd := &cobra.Command{
		Use:   "locale [id]",
		Short: "Show locale data and picker size hints",
		Long: `Show the patterns, column order and meridiem use of a locale together
with the column widths a picker needs at the preferred text size.

Without an id the configured locale is shown.`,
		Example: `
dyntype locale
dyntype locale de_DE --category accessibilityLarge
dyntype locale --list
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if o.list {
				for _, tag := range locale.Available() {
					fmt.Fprintln(out, tag)
				}
				return nil
			}

			r, err := root.resolve()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if r.Locale, err = locale.Lookup(args[0]); err != nil {
					return err
				}
			}
			if o.category != "" {
				if r.Category, err = dyntype.ParseContentSizeCategory(o.category); err != nil {
					return err
				}
			}
			return describeLocale(out, r)
		},
	}
	cmd.Flags().BoolVar(&o.list, "list", false, "list the bundled locales")
	cmd.Flags().StringVar(&o.category, "category", "", "content size category for the size hints")
	topLevel.AddCommand(cmd)
}

func describeLocale(out io.Writer, r *config.Resolved) error {
	loc := r.Locale
	order := loc.Ordering()
	names := make([]string, len(order))
	for i, c := range order {
		names[i] = c.String()
	}
	meridiem := "no"
	if loc.HasMeridiem() {
		meridiem = loc.MeridiemSymbol(false) + "/" + loc.MeridiemSymbol(true)
	}

	label := lipgloss.NewStyle().Bold(true).Width(12)
	for _, line := range [][2]string{
		{"Locale", loc.String()},
		{"Long date", loc.LongDatePattern},
		{"Hour", loc.HourPattern},
		{"Ordering", strings.Join(names, " ")},
		{"Meridiem", meridiem},
		{"Category", r.Category.String()},
	} {
		fmt.Fprintln(out, label.Render(line[0])+line[1])
	}

	sizer, err := dyntype.NewColumnSizer(nil, dyntype.Body)
	if err != nil {
		return err
	}
	height, err := sizer.RowHeight(r.Category)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, label.Render("Row height")+formatPoints(height))

	p := picker.New(picker.WithLocale(loc), picker.WithCalendar(r.Calendar))
	var rows [][]string
	for _, mode := range []picker.Mode{picker.ModeDate, picker.ModeDateAndTime} {
		p.SetMode(mode)
		widths, err := sizer.ColumnWidths(p, r.Category)
		if err != nil {
			return err
		}
		for i, w := range widths {
			rows = append(rows, []string{mode.String(), p.ColumnKind(i).String(), formatPoints(w)})
		}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MODE", "COLUMN", "WIDTH").
		Rows(rows...)
	fmt.Fprintln(out, t.Render())
	return nil
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "pt"
}
