package newton

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/pkg/errors"
)

// WritePPM encodes img as a binary (P6) portable pixmap. Alpha is dropped.
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return errors.Wrap(err, "write ppm header")
	}

	pixel := make([]byte, 3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixel[0], pixel[1], pixel[2] = byte(r>>8), byte(g>>8), byte(b>>8)
			if _, err := bw.Write(pixel); err != nil {
				return errors.Wrap(err, "write ppm pixels")
			}
		}
	}
	return errors.Wrap(bw.Flush(), "flush ppm")
}
