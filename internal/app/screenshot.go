package app

import (
	"errors"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// askScreenshotPath opens the native save dialog. An empty path with no
// error means the user canceled.
func askScreenshotPath() (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

// writeScreenshot encodes the rendered frame as PNG. Must run inside Draw,
// where the screen's pixels are readable.
func writeScreenshot(screen *ebiten.Image, path string) error {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 4*w*h)
	screen.ReadPixels(pix)

	img := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
