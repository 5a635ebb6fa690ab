package imaging

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

const (
	// DefaultJPEGQuality is used when OutputOptions.JPEGQuality is not set
	DefaultJPEGQuality = 90
	// DefaultDirPerm is used when OutputOptions.DirPerm is not set
	DefaultDirPerm os.FileMode = 0o755
)

var extensions = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// FormatFromPath returns the image format for the file extension of path
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.Mark(errors.Newf("unknown file extension %q", ext), ErrUnsupportedFormat)
}

// OutputOptions controls how images are written
type OutputOptions struct {
	JPEGQuality int
	DirPerm     os.FileMode
}

// Writer writes images to the filesystem
type Writer struct {
	jpegQuality int
	dirPerm     os.FileMode
}

// NewWriter returns a Writer, zero options take the defaults
func NewWriter(opts OutputOptions) *Writer {
	w := &Writer{
		jpegQuality: opts.JPEGQuality,
		dirPerm:     opts.DirPerm,
	}
	if w.jpegQuality <= 0 {
		w.jpegQuality = DefaultJPEGQuality
	}
	if w.dirPerm == 0 {
		w.dirPerm = DefaultDirPerm
	}
	return w
}

// EnsureDir creates all missing parent directories of path.
// It is a no-op if they already exist.
func (w *Writer) EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, w.dirPerm); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}
	return nil
}

// Save encodes img into path, the format is inferred from the file extension
func (w *Writer) Save(img image.Image, path string) (Format, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.WithStack(err)
	}

	err = w.Encode(f, img, format)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.WithStack(cerr)
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	logger.KV(xlog.DEBUG,
		"status", "saved",
		"path", path,
		"format", format,
		"size", img.Bounds().Size().String(),
	)
	return format, nil
}

// Encode writes img to out in the given format
func (w *Writer) Encode(out io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(out, img)
	case FormatJPEG:
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: w.jpegQuality})
	case FormatGIF:
		err = gif.Encode(out, img, nil)
	case FormatBMP:
		err = bmp.Encode(out, img)
	case FormatTIFF:
		err = tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.Mark(errors.Newf("unknown image format %q", format), ErrUnsupportedFormat)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", format)
	}
	return nil
}
