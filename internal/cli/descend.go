package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/optim"
)

// descendOptions configures the descend command.
type descendOptions struct {
	Expr      string
	Optimizer string
	Start     float64
	LR        float64
	Momentum  float64
	Steps     int
	Tolerance float64
}

func loadDescendOptions(v *viper.Viper, cmd *cobra.Command) (descendOptions, error) {
	o := descendOptions{
		Expr:      v.GetString(key(cmd, "expr")),
		Optimizer: v.GetString(key(cmd, "optimizer")),
		Start:     v.GetFloat64(key(cmd, "start")),
		LR:        v.GetFloat64(key(cmd, "lr")),
		Momentum:  v.GetFloat64(key(cmd, "momentum")),
		Steps:     v.GetInt(key(cmd, "steps")),
		Tolerance: v.GetFloat64(key(cmd, "tolerance")),
	}
	return o, o.Validate()
}

// Validate checks option ranges.
func (o descendOptions) Validate() error {
	switch {
	case o.LR <= 0:
		return errors.Errorf("lr must be positive, got %v", o.LR)
	case o.Momentum < 0 || o.Momentum >= 1:
		return errors.Errorf("momentum must be in [0, 1), got %v", o.Momentum)
	case o.Steps < 0:
		return errors.Errorf("steps must not be negative, got %d", o.Steps)
	case o.Tolerance < 0:
		return errors.Errorf("tolerance must not be negative, got %v", o.Tolerance)
	}
	return nil
}

func (o descendOptions) optimizer() (optim.Optimizer, error) {
	switch o.Optimizer {
	case "sgd":
		return optim.NewSGD(optim.SGDConfig{LR: o.LR, Momentum: o.Momentum}), nil
	case "adam":
		return optim.NewAdam(optim.AdamConfig{LR: o.LR}), nil
	}
	return nil, errors.Errorf("unknown optimizer %q (want sgd or adam)", o.Optimizer)
}

func newDescendCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "descend",
		Short: "Minimise an expression with gradient descent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := loadDescendOptions(v, cmd)
			if err != nil {
				return err
			}
			e, err := lookupExpression(o.Expr)
			if err != nil {
				return err
			}
			opt, err := o.optimizer()
			if err != nil {
				return err
			}

			klog.V(1).InfoS("starting descent", "expr", e.Description, "optimizer", o.Optimizer,
				"lr", o.LR, "start", o.Start, "steps", o.Steps)
			res := optim.Minimize(func(x []dual.Dual) dual.Dual {
				return e.F(x[0])
			}, []float64{o.Start}, opt, optim.MinimizeConfig{
				MaxSteps:  o.Steps,
				Tolerance: o.Tolerance,
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Predicted minimum: %v\n", res.X[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Value: %v\n", res.Value)
			fmt.Fprintf(cmd.OutOrStdout(), "Steps: %d (converged: %v)\n", res.Steps, res.Converged)
			return nil
		},
	}
	cmd.Flags().String("expr", "parabola", "Expression name")
	cmd.Flags().String("optimizer", "sgd", "Optimizer: sgd or adam")
	cmd.Flags().Float64("start", 5, "Starting point")
	cmd.Flags().Float64("lr", 0.3, "Learning rate")
	cmd.Flags().Float64("momentum", 0, "SGD momentum in [0, 1)")
	cmd.Flags().Int("steps", 30, "Maximum number of updates")
	cmd.Flags().Float64("tolerance", 0, "Stop when |gradient| falls below this (0 disables)")
	return cmd
}
