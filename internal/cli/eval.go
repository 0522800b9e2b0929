package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/forward"
)

func newEvalCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate an expression and its derivative at a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := lookupExpression(v.GetString(key(cmd, "expr")))
			if err != nil {
				return err
			}
			x := v.GetFloat64(key(cmd, "x"))

			value, gradient := forward.Gradient(func(in []dual.Dual) dual.Dual {
				return e.F(in[0])
			}, []float64{x})

			fmt.Fprintf(cmd.OutOrStdout(), "f(x)  = %s at x = %v\n", e.Description, x)
			fmt.Fprintf(cmd.OutOrStdout(), "value = %.15g\n", value)
			fmt.Fprintf(cmd.OutOrStdout(), "df/dx = %.15g\n", gradient[0])
			return nil
		},
	}
	cmd.Flags().String("expr", "composite", "Expression name")
	cmd.Flags().Float64("x", 2, "Evaluation point")
	return cmd
}
