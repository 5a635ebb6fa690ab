package imaging

import (
	"bytes"
	"image"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"golang.design/x/clipboard"
)

// SystemClipboard reads images from the OS clipboard with golang.design/x/clipboard
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

var _ Clipboard = (*SystemClipboard)(nil)

// NewSystemClipboard returns the OS clipboard backend.
// The clipboard is initialized on the first read.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Init initializes access to the clipboard
func (c *SystemClipboard) Init() error {
	c.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			c.initErr = errors.Mark(errors.Wrap(err, "failed to initialize clipboard"), ErrClipboardUnavailable)
		}
	})
	return c.initErr
}

// ReadImage returns the clipboard image, or ErrNoImage
func (c *SystemClipboard) ReadImage() (image.Image, error) {
	if err := c.Init(); err != nil {
		return nil, err
	}

	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		return nil, ErrNoImage
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode clipboard image")
	}
	logger.KV(xlog.DEBUG,
		"status", "clipboard_image",
		"format", format,
		"size", img.Bounds().Size().String(),
	)
	return img, nil
}
