package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/born-ml/dualdiff/internal/integrate"
)

// integrateOptions configures the integrate command.
type integrateOptions struct {
	Expr  string
	Start float64
	End   float64
	Steps int
}

func loadIntegrateOptions(v *viper.Viper, cmd *cobra.Command) (integrateOptions, error) {
	o := integrateOptions{
		Expr:  v.GetString(key(cmd, "expr")),
		Start: v.GetFloat64(key(cmd, "start")),
		End:   v.GetFloat64(key(cmd, "end")),
		Steps: v.GetInt(key(cmd, "steps")),
	}
	return o, o.Validate()
}

// Validate checks option ranges.
func (o integrateOptions) Validate() error {
	if o.Start > o.End {
		return errors.Errorf("start %v is after end %v", o.Start, o.End)
	}
	if o.Steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", o.Steps)
	}
	return nil
}

func newIntegrateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate an expression with gradient-assisted quadrature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := loadIntegrateOptions(v, cmd)
			if err != nil {
				return err
			}
			e, err := lookupExpression(o.Expr)
			if err != nil {
				return err
			}
			f := integrate.Integrand(e.F)

			fmt.Fprintf(cmd.OutOrStdout(), "Integral of %s from %v to %v\n", e.Description, o.Start, o.End)
			if e.Antiderivative != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Exact = %v\n", e.Antiderivative(o.End)-e.Antiderivative(o.Start))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Euler (%d steps) = %v\n", o.Steps, integrate.Euler(f, o.Start, o.End, o.Steps))
			fmt.Fprintf(cmd.OutOrStdout(), "Euler with gradients (%d steps) = %v\n", o.Steps,
				integrate.EulerWithGradients(f, o.Start, o.End, o.Steps))
			fmt.Fprintf(cmd.OutOrStdout(), "Trapezoidal (%d steps) = %v\n", o.Steps,
				integrate.Trapezoidal(f, o.Start, o.End, o.Steps))
			fmt.Fprintf(cmd.OutOrStdout(), "Corrected trapezoidal (%d steps) = %v\n", o.Steps,
				integrate.TrapezoidalCorrected(f, o.Start, o.End, o.Steps))
			return nil
		},
	}
	cmd.Flags().String("expr", "square", "Expression name")
	cmd.Flags().Float64("start", 0, "Lower bound")
	cmd.Flags().Float64("end", 5, "Upper bound")
	cmd.Flags().Int("steps", 100, "Number of intervals")
	return cmd
}
