// Package screenshot provides the take_screenshot tool.
package screenshot

import (
	"context"
	"image"
	"reflect"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/tkuutti/screenshot-mcp/pkg/imaging"
	"github.com/tkuutti/screenshot-mcp/pkg/metricskey"
	"github.com/tkuutti/screenshot-mcp/pkg/schema"
	"github.com/tkuutti/screenshot-mcp/tools"
)

var logger = xlog.NewPackageLogger("github.com/tkuutti/screenshot-mcp/tools", "screenshot")

const ToolName = "take_screenshot"

const errPrefix = "Error taking screenshot"

// Region is a rectangle on the screen given by its top-left corner and extent
type Region struct {
	X      *int `json:"x" yaml:"x" jsonschema:"title=X,description=Left edge of the region in screen pixels" validate:"required"`
	Y      *int `json:"y" yaml:"y" jsonschema:"title=Y,description=Top edge of the region in screen pixels" validate:"required"`
	Width  *int `json:"width" yaml:"width" jsonschema:"title=Width,description=Width of the region in pixels" validate:"required"`
	Height *int `json:"height" yaml:"height" jsonschema:"title=Height,description=Height of the region in pixels" validate:"required"`
}

// Bounds returns the bounding box (x, y, x+width, y+height).
// Values are not clamped or normalized.
func (r *Region) Bounds() image.Rectangle {
	x, y := *r.X, *r.Y
	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + *r.Width, Y: y + *r.Height},
	}
}

// Request represents the tool input.
type Request struct {
	FilePath string  `json:"file_path" yaml:"file_path" jsonschema:"title=File Path,description=Full path where to save the screenshot (e.g. '/path/to/screenshot.png')" validate:"required"`
	Region   *Region `json:"region,omitempty" yaml:"region,omitempty" jsonschema:"title=Region,description=Optional region to capture (x\\, y\\, width\\, height)"`
}

// Tool captures the screen, or a region of it, into an image file
type Tool struct {
	name        string
	description string

	screen imaging.Screen
	writer *imaging.Writer
}

// ensure Tool implements the tools.Tool interface
var _ tools.Tool[Request] = (*Tool)(nil)

// New returns the take_screenshot tool
func New(screen imaging.Screen, writer *imaging.Writer) *Tool {
	return &Tool{
		name:        ToolName,
		description: "Take a screenshot and save it to a specified path",
		screen:      screen,
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
		return t.fail(ctx, "invalid_input", err)
	}
	return t.Run(ctx, req)
}

func (t *Tool) Run(ctx context.Context, req *Request) tools.Result {
	if err := tools.Validate(req); err != nil {
		return t.fail(ctx, "invalid_input", err)
	}

	if err := t.writer.EnsureDir(req.FilePath); err != nil {
		return t.fail(ctx, "mkdir_failed", err)
	}

	img, err := t.capture(req.Region)
	if err != nil {
		return t.fail(ctx, "capture_failed", err)
	}

	format, err := t.writer.Save(img, req.FilePath)
	if err != nil {
		return t.fail(ctx, "save_failed", err)
	}
	metricskey.StatsImagesSaved.IncrCounter(1, "screen", string(format))

	return tools.Success("Screenshot saved successfully to: %s", req.FilePath)
}

func (t *Tool) capture(region *Region) (image.Image, error) {
	var (
		img  image.Image
		err  error
		mode = "full"
	)

	started := time.Now()
	if region == nil {
		img, err = t.screen.CaptureScreen()
	} else {
		mode = "region"
		img, err = t.screen.CaptureRect(region.Bounds())
	}
	metricskey.PerfScreenCapture.MeasureSince(started, mode)

	if err == nil && img == nil {
		err = errors.New("capture returned no image")
	}
	return img, err
}

func (t *Tool) fail(ctx context.Context, status string, err error) tools.Result {
	logger.ContextKV(ctx, xlog.ERROR,
		"call_id", tools.CallID(ctx),
		"tool", t.name,
		"status", status,
		"err", err.Error(),
	)
	return tools.Failure(errPrefix, err)
}
