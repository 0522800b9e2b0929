package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/born-ml/dualdiff/internal/newton"
)

// newtonOptions configures the newton command.
type newtonOptions struct {
	Rows      int
	Cols      int
	MaxIter   int
	Tolerance float64
	Workers   int
	Output    string
}

func loadNewtonOptions(v *viper.Viper, cmd *cobra.Command) (newtonOptions, error) {
	o := newtonOptions{
		Rows:      v.GetInt(key(cmd, "rows")),
		Cols:      v.GetInt(key(cmd, "cols")),
		MaxIter:   v.GetInt(key(cmd, "max-iter")),
		Tolerance: v.GetFloat64(key(cmd, "tol")),
		Workers:   v.GetInt(key(cmd, "workers")),
		Output:    v.GetString(key(cmd, "output")),
	}
	return o, o.Validate()
}

// Validate checks option ranges.
func (o newtonOptions) Validate() error {
	switch {
	case o.Rows <= 0 || o.Cols <= 0:
		return errors.Errorf("image size must be positive, got %dx%d", o.Cols, o.Rows)
	case o.MaxIter <= 0:
		return errors.Errorf("max-iter must be positive, got %d", o.MaxIter)
	case o.Tolerance <= 0:
		return errors.Errorf("tol must be positive, got %v", o.Tolerance)
	}
	return nil
}

func newNewtonCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Render the Newton fractal of z^3 - 1 as a PPM image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := loadNewtonOptions(v, cmd)
			if err != nil {
				return err
			}

			r := newton.DefaultRenderer()
			r.Rows, r.Cols = o.Rows, o.Cols
			r.MaxIter, r.Tolerance = o.MaxIter, o.Tolerance
			r.Workers = o.Workers

			img, err := r.Render(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if o.Output != "-" {
				f, err := os.Create(o.Output)
				if err != nil {
					return errors.Wrap(err, "create output")
				}
				defer f.Close()
				w = f
			}
			if err := newton.WritePPM(w, img); err != nil {
				return err
			}
			klog.V(1).InfoS("wrote image", "output", o.Output, "cols", o.Cols, "rows", o.Rows)
			return nil
		},
	}
	cmd.Flags().Int("rows", 720, "Image height in pixels")
	cmd.Flags().Int("cols", 1280, "Image width in pixels")
	cmd.Flags().Int("max-iter", 50, "Newton iterations per pixel")
	cmd.Flags().Float64("tol", 1e-6, "Squared distance to a root that counts as converged")
	cmd.Flags().Int("workers", 0, "Rows rendered concurrently (0 = GOMAXPROCS)")
	cmd.Flags().StringP("output", "o", "-", "Output file (- for stdout)")
	return cmd
}
