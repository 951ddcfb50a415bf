package view

import (
	"image"

	"github.com/soocke/ratio-crop-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// photoLabel is a label that displays one image at a time. The previous Tk
// photo is deleted on every update so off-screen pixel data does not pile up.
type photoLabel struct {
	label *LabelWidget
	photo *Img
}

func newPhotoLabel(label *LabelWidget, photo *Img) *photoLabel {
	return &photoLabel{label: label, photo: photo}
}

// placeholderPNG returns a blank w x h PNG.
func placeholderPNG(w, h int) []byte {
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func (p *photoLabel) set(img image.Image) {
	if p == nil || p.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if p.photo != nil {
		p.photo.Delete()
	}
	p.photo = NewPhoto(Data(pngBytes))
	p.label.Configure(Image(p.photo))
}

func (p *photoLabel) release() {
	if p == nil {
		return
	}
	if p.photo != nil {
		p.photo.Delete()
		p.photo = nil
	}
}
