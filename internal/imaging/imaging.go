// Package imaging implements the client-side image pipeline for card image
// slots: select → validate size → crop → encode → upload, with rollback on
// failure. The profile and banner slots are independent state machines; only
// one operation may be in flight per slot at a time.
package imaging

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Slot is one of the two image attachment points on a card.
type Slot string

const (
	SlotProfile Slot = "profile"
	SlotBanner  Slot = "banner"
)

const (
	// MaxFileSize caps selected files at 5 MB, matching the backend limit.
	MaxFileSize = 5 << 20

	jpegQuality = 85
)

// Output dimensions per slot. The crop region is scaled into these.
const (
	profileSize  = 512
	bannerWidth  = 1200
	bannerHeight = 400
)

// Aspect returns the slot's crop aspect ratio (width / height).
func (s Slot) Aspect() float64 {
	if s == SlotBanner {
		return 3.0
	}
	return 1.0
}

// Circular reports whether the slot's crop is circular-masked.
func (s Slot) Circular() bool {
	return s == SlotProfile
}

// Field returns the draft field name for the slot.
func (s Slot) Field() string {
	if s == SlotBanner {
		return "bannerPicture"
	}
	return "profilePicture"
}

// LoadFile reads and decodes an image file, enforcing the size cap before
// any bytes are decoded. Oversized or undecodable files leave no state
// behind; the caller simply reports the error.
func LoadFile(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("file too large: max is %dMB", MaxFileSize>>20)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
