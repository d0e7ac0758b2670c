package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/jpeg"

	xdraw "golang.org/x/image/draw"
)

// CropTask is a transient in-flight crop: the selected source image plus an
// aspect-locked crop rectangle in source coordinates. It is created when a
// file is selected and destroyed when the crop is confirmed (producing the
// encoded upload payload) or cancelled.
type CropTask struct {
	Slot Slot

	src  image.Image
	rect image.Rectangle
}

// NewCropTask builds a crop task with a centered default region covering 90%
// of the limiting dimension at the slot's aspect ratio.
func NewCropTask(src image.Image, slot Slot) *CropTask {
	t := &CropTask{Slot: slot, src: src}

	b := src.Bounds()
	aspect := slot.Aspect()

	w := float64(b.Dx()) * 0.9
	h := w / aspect
	if h > float64(b.Dy()) {
		h = float64(b.Dy()) * 0.9
		w = h * aspect
	}

	t.rect = centeredRect(b, int(w), int(h))
	return t
}

// Rect returns the current crop region in source coordinates.
func (t *CropTask) Rect() image.Rectangle {
	return t.rect
}

// Move shifts the crop region by (dx, dy), clamped to the source bounds.
func (t *CropTask) Move(dx, dy int) {
	moved := t.rect.Add(image.Pt(dx, dy))
	t.rect = clampRect(moved, t.src.Bounds())
}

// Zoom resizes the crop region by factor around its center, preserving the
// aspect ratio and clamping to the source bounds. Factors below 1 zoom in.
func (t *CropTask) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	b := t.src.Bounds()
	w := int(float64(t.rect.Dx()) * factor)
	h := int(float64(w) / t.Slot.Aspect())

	// Keep a usable minimum region
	if w < 16 || h < 16 {
		return
	}
	if w > b.Dx() || h > b.Dy() {
		return
	}

	cx := (t.rect.Min.X + t.rect.Max.X) / 2
	cy := (t.rect.Min.Y + t.rect.Max.Y) / 2
	resized := image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
	t.rect = clampRect(resized, b)
}

// Confirm rasterizes the crop region to the slot's output dimensions and
// encodes it as JPEG (quality 85). Profile crops are circular-masked over a
// white background. The returned bytes are the upload payload.
func (t *CropTask) Confirm() ([]byte, error) {
	outW, outH := profileSize, profileSize
	if t.Slot == SlotBanner {
		outW, outH = bannerWidth, bannerHeight
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), t.src, t.rect, xdraw.Over, nil)

	var out image.Image = dst
	if t.Slot.Circular() {
		out = circularMask(dst)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the upload filename for the encoded crop.
func (t *CropTask) Filename() string {
	return "cropped-image.jpg"
}

// circularMask composites the square image through a circular alpha mask
// onto a white background (JPEG has no alpha channel).
func circularMask(src *image.RGBA) image.Image {
	b := src.Bounds()
	out := image.NewRGBA(b)
	stddraw.Draw(out, b, image.NewUniform(color.White), image.Point{}, stddraw.Src)
	stddraw.DrawMask(out, b, src, b.Min, &circleMask{
		cx: float64(b.Dx()) / 2,
		cy: float64(b.Dy()) / 2,
		r:  float64(b.Dx()) / 2,
	}, b.Min, stddraw.Over)
	return out
}

// circleMask is an alpha mask that is opaque inside the circle.
type circleMask struct {
	cx, cy, r float64
}

func (m *circleMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(m.r*2), int(m.r*2))
}

func (m *circleMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - m.cx
	dy := float64(y) + 0.5 - m.cy
	if dx*dx+dy*dy <= m.r*m.r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

// centeredRect returns a w×h rectangle centered within bounds.
func centeredRect(bounds image.Rectangle, w, h int) image.Rectangle {
	x := bounds.Min.X + (bounds.Dx()-w)/2
	y := bounds.Min.Y + (bounds.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// clampRect shifts r so it stays within bounds without resizing it.
func clampRect(r, bounds image.Rectangle) image.Rectangle {
	if r.Min.X < bounds.Min.X {
		r = r.Add(image.Pt(bounds.Min.X-r.Min.X, 0))
	}
	if r.Min.Y < bounds.Min.Y {
		r = r.Add(image.Pt(0, bounds.Min.Y-r.Min.Y))
	}
	if r.Max.X > bounds.Max.X {
		r = r.Add(image.Pt(bounds.Max.X-r.Max.X, 0))
	}
	if r.Max.Y > bounds.Max.Y {
		r = r.Add(image.Pt(0, bounds.Max.Y-r.Max.Y))
	}
	return r
}
