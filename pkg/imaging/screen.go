package imaging

import (
	"image"

	"github.com/cockroachdb/errors"
	"github.com/kbinani/screenshot"
)

// CaptureOptions controls what a full screen capture covers
type CaptureOptions struct {
	// AllDisplays captures the union of all active displays
	AllDisplays bool
	// Display is the index of the display to capture when AllDisplays is false
	Display int
}

// DisplayScreen captures the screen with github.com/kbinani/screenshot
type DisplayScreen struct {
	opts CaptureOptions
}

var _ Screen = (*DisplayScreen)(nil)

// NewDisplayScreen returns the OS screen backend
func NewDisplayScreen(opts CaptureOptions) *DisplayScreen {
	return &DisplayScreen{opts: opts}
}

// Displays returns the bounds of the active displays
func (s *DisplayScreen) Displays() []image.Rectangle {
	n := screenshot.NumActiveDisplays()
	list := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, screenshot.GetDisplayBounds(i))
	}
	return list
}

// CaptureScreen captures the configured display, or all of them
func (s *DisplayScreen) CaptureScreen() (image.Image, error) {
	bounds, err := FullScreenBounds(s.Displays(), s.opts)
	if err != nil {
		return nil, err
	}
	return s.CaptureRect(bounds)
}

// CaptureRect captures the given bounding box
func (s *DisplayScreen) CaptureRect(bounds image.Rectangle) (image.Image, error) {
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to capture %v", bounds)
	}
	return img, nil
}

// FullScreenBounds returns the bounding box of a full screen capture
// for the given display layout.
func FullScreenBounds(displays []image.Rectangle, opts CaptureOptions) (image.Rectangle, error) {
	if len(displays) == 0 {
		return image.Rectangle{}, ErrNoDisplay
	}

	if opts.AllDisplays {
		bounds := displays[0]
		for _, d := range displays[1:] {
			bounds = bounds.Union(d)
		}
		return bounds, nil
	}

	if opts.Display < 0 || opts.Display >= len(displays) {
		return image.Rectangle{}, errors.Newf("display %d not found: %d active", opts.Display, len(displays))
	}
	return displays[opts.Display], nil
}
