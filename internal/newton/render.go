package newton

import (
	"context"
	"image"
	"image/color"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/born-ml/dualdiff/internal/forward"
)

// Renderer colours each pixel of a rectangular region of the plane by the
// root Newton's method converges to from that pixel.
type Renderer struct {
	Config

	System forward.Objective // 2 -> 2 system, defaults to CubicUnity
	Roots  [][]float64       // Known roots, defaults to UnityRoots

	Left, Right float64 // x range
	Top, Bottom float64 // y range (Top maps to row 0)
	Rows, Cols  int

	Colors     []color.RGBA // One per root
	Background color.RGBA   // Pixels that reach no root

	Workers int // Concurrent rows (<= 0 means GOMAXPROCS)
}

// DefaultRenderer returns the z³ - 1 fractal on [-2, 2]² at 1280x720.
func DefaultRenderer() *Renderer {
	return &Renderer{
		Config: DefaultConfig(),
		System: CubicUnity,
		Roots:  UnityRoots(),
		Left:   -2,
		Right:  2,
		Top:    -2,
		Bottom: 2,
		Rows:   720,
		Cols:   1280,
		Colors: []color.RGBA{
			{R: 255, A: 255},
			{G: 255, A: 255},
			{B: 255, A: 255},
		},
		Background: color.RGBA{A: 255},
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Render computes the image. Rows are computed concurrently; ctx
// cancellation stops the remaining rows.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, error) {
	if r.Rows <= 0 || r.Cols <= 0 {
		return nil, errors.Errorf("invalid image size %dx%d", r.Cols, r.Rows)
	}
	system, roots := r.System, r.Roots
	if system == nil {
		system = CubicUnity
	}
	if roots == nil {
		roots = UnityRoots()
	}
	if len(r.Colors) < len(roots) {
		return nil, errors.Errorf("%d colors for %d roots", len(r.Colors), len(roots))
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Cols, r.Rows))
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for row := 0; row < r.Rows; row++ {
		row := row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			y := lerp(r.Top, r.Bottom, float64(row)/float64(r.Rows))
			for col := 0; col < r.Cols; col++ {
				x := lerp(r.Left, r.Right, float64(col)/float64(r.Cols))
				c := r.Background
				if k, ok := FindRoot(system, []float64{x, y}, roots, r.Config); ok {
					c = r.Colors[k]
				}
				img.SetRGBA(col, row, c)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "render")
	}

	klog.V(2).InfoS("rendered newton basins", "cols", r.Cols, "rows", r.Rows)
	return img, nil
}
