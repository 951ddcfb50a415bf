package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// IconPNG contains the raw PNG bytes of the window icon.
//
//go:embed icon.png
var IconPNG []byte

// IconImage decodes the embedded PNG into an image.Image.
func IconImage() (image.Image, error) {
	if len(IconPNG) == 0 {
		return nil, fmt.Errorf("embedded icon.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(IconPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
