package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/dyntype/pkg/calendar"
	"github.com/go-drift/dyntype/pkg/picker"
	"github.com/go-drift/dyntype/pkg/tui"
)

type pickerOptions struct {
	mode  string
	date  string
	today string
}

func addPicker(topLevel *cobra.Command, root *rootOptions) {
	o := &pickerOptions{}
	cmd := &cobra.Command{
		Use:   "picker",
		Short: "Pick a date or a date and time",
		Long: `Show a wheel picker in the terminal. The chosen date is printed when
it is accepted with enter.

Flags override the picker section of the configuration file.`,
		Example: `
dyntype picker
dyntype picker --mode dateAndTime
dyntype picker --date 2000-01-31 --config presets.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := root.resolve()
			if err != nil {
				return err
			}
			if o.mode != "" {
				m, err := picker.ParseMode(o.mode)
				if err != nil {
					return err
				}
				r.Picker.Mode = m
			}
			if o.today != "" {
				r.Picker.TodayLabel = o.today
			}
			if o.date != "" {
				d, err := calendar.Parse(o.date)
				if err != nil {
					return err
				}
				r.Picker.Date = d
				r.Picker.HasDate = true
			}

			m := tui.NewPickerModel(r.NewPicker())
			if _, err := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run(); err != nil {
				return fmt.Errorf("picker: %w", err)
			}
			if m.Accepted() {
				fmt.Fprintln(cmd.OutOrStdout(), m.Date())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&o.mode, "mode", "", "date or dateAndTime")
	cmd.Flags().StringVar(&o.date, "date", "", "initial date, YYYY-MM-DD or YYYY-MM-DD HH:MM")
	cmd.Flags().StringVar(&o.today, "today-label", "", "title of today's row in dateAndTime mode")
	topLevel.AddCommand(cmd)
}
