// Package imaging is the screen, clipboard and image file backend used by the tools.
// Pixel access is delegated to github.com/kbinani/screenshot and golang.design/x/clipboard,
// encoding to the image/* and golang.org/x/image codecs.
package imaging

import (
	"image"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
)

//go:generate mockgen -source=imaging.go -destination=../../mocks/mockimaging/imaging_mock.gen.go -package mockimaging

var logger = xlog.NewPackageLogger("github.com/tkuutti/screenshot-mcp/pkg", "imaging")

var (
	// ErrNoDisplay is returned when no active display is available for capture
	ErrNoDisplay = errors.New("no active displays found")
	// ErrNoImage is returned when the clipboard does not hold an image
	ErrNoImage = errors.New("no image in clipboard")
	// ErrClipboardUnavailable is returned when the system clipboard cannot be accessed
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	// ErrUnsupportedFormat is returned when the destination extension has no encoder
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Screen provides pixel capture of the visible screen.
type Screen interface {
	// Displays returns the bounds of the active displays
	Displays() []image.Rectangle
	// CaptureScreen captures the full visible screen
	CaptureScreen() (image.Image, error)
	// CaptureRect captures the given bounding box, the box is passed to the OS as is
	CaptureRect(bounds image.Rectangle) (image.Image, error)
}

// Clipboard provides access to the image currently on the system clipboard.
type Clipboard interface {
	// ReadImage returns the clipboard image,
	// or ErrNoImage if the clipboard holds anything else.
	ReadImage() (image.Image, error)
}
