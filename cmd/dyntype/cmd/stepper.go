package cmd

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/dyntype/pkg/config"
	"github.com/go-drift/dyntype/pkg/tui"
)

type stepperOptions struct {
	value    float64
	minimum  float64
	maximum  float64
	stepSize float64
}

func addStepper(topLevel *cobra.Command, root *rootOptions) {
	o := &stepperOptions{}
	cmd := &cobra.Command{
		Use:   "stepper",
		Short: "Step a number between bounds",
		Long: `Show a minus/plus stepper in the terminal. Holding a key repeats the step
and speeds up after a while. The final value is printed on exit.

Flags override the stepper section of the configuration file.`,
		Example: `
dyntype stepper --min 0 --max 10
dyntype stepper --step 0.5 --value 2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := root.resolve()
			if err != nil {
				return err
			}
			if err := o.apply(cmd, &r.Stepper); err != nil {
				return err
			}

			m := tui.NewStepperModel(r.NewStepper(), tui.WithAutoRepeat(r.Stepper.AutoRepeat))
			if _, err := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run(); err != nil {
				return fmt.Errorf("stepper: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(m.Value(), 'f', -1, 64))
			return nil
		},
	}
	o.bind(cmd)
	topLevel.AddCommand(cmd)
}

func (o *stepperOptions) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.value, "value", 0, "initial value")
	cmd.Flags().Float64Var(&o.minimum, "min", 0, "minimum value")
	cmd.Flags().Float64Var(&o.maximum, "max", 100, "maximum value")
	cmd.Flags().Float64Var(&o.stepSize, "step", 1, "step size")
}

// apply copies the flags that were set onto s and revalidates the result.
func (o *stepperOptions) apply(cmd *cobra.Command, s *config.StepperSettings) error {
	flags := cmd.Flags()
	if flags.Changed("value") {
		s.Value = o.value
	}
	if flags.Changed("min") {
		s.Minimum = o.minimum
	}
	if flags.Changed("max") {
		s.Maximum = o.maximum
	}
	if flags.Changed("step") {
		s.StepSize = o.stepSize
	}
	if s.Minimum >= s.Maximum {
		return fmt.Errorf("--min %g must be below --max %g", s.Minimum, s.Maximum)
	}
	if s.StepSize <= 0 {
		return fmt.Errorf("--step %g must be positive", s.StepSize)
	}
	return nil
}
