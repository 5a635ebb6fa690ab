package imaging_test

import (
	"image"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkuutti/screenshot-mcp/pkg/imaging"
)

func TestFullScreenBounds(t *testing.T) {
	t.Parallel()

	primary := image.Rect(0, 0, 1920, 1080)
	right := image.Rect(1920, -200, 4480, 1240)
	displays := []image.Rectangle{primary, right}

	b, err := imaging.FullScreenBounds(displays, imaging.CaptureOptions{})
	require.NoError(t, err)
	assert.Equal(t, primary, b)

	b, err = imaging.FullScreenBounds(displays, imaging.CaptureOptions{Display: 1})
	require.NoError(t, err)
	assert.Equal(t, right, b)

	b, err = imaging.FullScreenBounds(displays, imaging.CaptureOptions{AllDisplays: true})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, -200, 4480, 1240), b)

	_, err = imaging.FullScreenBounds(displays, imaging.CaptureOptions{Display: 2})
	assert.EqualError(t, err, "display 2 not found: 2 active")

	_, err = imaging.FullScreenBounds(nil, imaging.CaptureOptions{})
	assert.True(t, errors.Is(err, imaging.ErrNoDisplay))
}
