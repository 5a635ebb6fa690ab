// Package clipboard provides the save_image_from_clipboard tool.
package clipboard

import (
	"context"
	"image"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/tkuutti/screenshot-mcp/pkg/imaging"
	"github.com/tkuutti/screenshot-mcp/pkg/metricskey"
	"github.com/tkuutti/screenshot-mcp/pkg/schema"
	"github.com/tkuutti/screenshot-mcp/tools"
)

var logger = xlog.NewPackageLogger("github.com/tkuutti/screenshot-mcp/tools", "clipboard")

const ToolName = "save_image_from_clipboard"

// NoImageMessage is returned when the clipboard holds no image
const NoImageMessage = "No image found in clipboard"

// Request represents the tool input.
type Request struct {
	FilePath string `json:"file_path" yaml:"file_path" jsonschema:"title=File Path,description=Full path where to save the image from clipboard" validate:"required"`
}

// Tool saves the clipboard image into a file
type Tool struct {
	name        string
	description string

	clipboard imaging.Clipboard
	writer    *imaging.Writer
}

// ensure Tool implements the tools.Tool interface
var _ tools.Tool[Request] = (*Tool)(nil)

// New returns the save_image_from_clipboard tool
func New(clipboard imaging.Clipboard, writer *imaging.Writer) *Tool {
	return &Tool{
		name:        ToolName,
		description: "Save an image from clipboard to specified path",
		clipboard:   clipboard,
		writer:      writer,
	}
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() *schema.Schema {
	return schema.MustNew(reflect.TypeOf(Request{}))
}

func (t *Tool) Call(ctx context.Context, input []byte) tools.Result {
	req, err := tools.Decode[Request](input)
	if err != nil {
		return t.fail(ctx, "Error saving clipboard image", "invalid_input", err)
	}
	return t.Run(ctx, req)
}

func (t *Tool) Run(ctx context.Context, req *Request) tools.Result {
	if err := tools.Validate(req); err != nil {
		return t.fail(ctx, "Error saving clipboard image", "invalid_input", err)
	}

	if err := t.writer.EnsureDir(req.FilePath); err != nil {
		return t.fail(ctx, "Error saving clipboard image", "mkdir_failed", err)
	}

	img, err := t.readImage()
	if errors.Is(err, imaging.ErrNoImage) {
		metricskey.StatsClipboardEmpty.IncrCounter(1, t.name)
		logger.ContextKV(ctx, xlog.INFO,
			"call_id", tools.CallID(ctx),
			"tool", t.name,
			"status", "clipboard_empty",
		)
		return tools.Success(NoImageMessage)
	}
	if err != nil {
		return t.fail(ctx, "Error accessing clipboard", "clipboard_access_failed", err)
	}

	format, err := t.writer.Save(img, req.FilePath)
	if err != nil {
		return t.fail(ctx, "Error saving clipboard image", "save_failed", err)
	}
	metricskey.StatsImagesSaved.IncrCounter(1, "clipboard", string(format))

	return tools.Success("Image from clipboard saved successfully to: %s", req.FilePath)
}

// readImage queries the clipboard, a panic in the backend is a clipboard access fault
func (t *Tool) readImage() (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = errors.Newf("clipboard backend panic: %v", r)
		}
	}()
	img, err = t.clipboard.ReadImage()
	if err == nil && img == nil {
		err = imaging.ErrNoImage
	}
	return img, err
}

func (t *Tool) fail(ctx context.Context, prefix, status string, err error) tools.Result {
	logger.ContextKV(ctx, xlog.ERROR,
		"call_id", tools.CallID(ctx),
		"tool", t.name,
		"status", status,
		"err", err.Error(),
	)
	return tools.Failure(prefix, err)
}
