package tools_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkuutti/screenshot-mcp/pkg/schema"
	"github.com/tkuutti/screenshot-mcp/tools"
)

type point struct {
	X *int `json:"x" validate:"required"`
	Y *int `json:"y" validate:"required"`
}

type echoRequest struct {
	Text  string `json:"text" jsonschema:"description=Text to echo" validate:"required"`
	Point *point `json:"point,omitempty"`
}

type echoTool struct {
	name  string
	panic bool
}

var _ tools.Tool[echoRequest] = (*echoTool)(nil)

func (t *echoTool) Name() string        { return t.name }
func (t *echoTool) Description() string { return "Echoes the text." }
func (t *echoTool) Parameters() *schema.Schema {
	return schema.MustNew(reflect.TypeOf(echoRequest{}))
}

func (t *echoTool) Call(ctx context.Context, input []byte) tools.Result {
	req, err := tools.Decode[echoRequest](input)
	if err != nil {
		return tools.Failure("Error echoing", err)
	}
	return t.Run(ctx, req)
}

func (t *echoTool) Run(_ context.Context, req *echoRequest) tools.Result {
	if err := tools.Validate(req); err != nil {
		return tools.Failure("Error echoing", err)
	}
	if t.panic {
		panic("boom")
	}
	return tools.Success("echo: %s", req.Text)
}

type recorder struct {
	events []string
	callID string
}

func (r *recorder) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	r.callID = tools.CallID(ctx)
	r.events = append(r.events, "start:"+tool.Name()+":"+input)
}

func (r *recorder) OnToolEnd(_ context.Context, tool tools.ITool, _ string, res tools.Result) {
	r.events = append(r.events, "end:"+tool.Name()+":"+res.Text)
}

func (r *recorder) OnToolError(_ context.Context, tool tools.ITool, _ string, err error) {
	r.events = append(r.events, "error:"+tool.Name()+":"+err.Error())
}

func TestResult(t *testing.T) {
	t.Parallel()

	ok := tools.Success("saved to: %s", "/tmp/a.png")
	assert.False(t, ok.Failed())
	assert.Equal(t, "saved to: /tmp/a.png", ok.String())

	failed := tools.Failure("Error taking screenshot", errors.New("permission denied"))
	assert.True(t, failed.Failed())
	assert.Equal(t, "Error taking screenshot: permission denied", failed.Text)
}

func TestDecodeValidate(t *testing.T) {
	t.Parallel()

	req, err := tools.Decode[echoRequest]([]byte(`{"text":"hi","point":{"x":0,"y":-3}}`))
	require.NoError(t, err)
	require.NoError(t, tools.Validate(req))
	assert.Equal(t, 0, *req.Point.X)
	assert.Equal(t, -3, *req.Point.Y)

	req, err = tools.Decode[echoRequest](nil)
	require.NoError(t, err)
	err = tools.Validate(req)
	assert.EqualError(t, err, "invalid arguments: text is required")
	assert.True(t, errors.Is(err, tools.ErrInvalidInput))

	req, err = tools.Decode[echoRequest]([]byte(`{"text":"hi","point":{"x":1}}`))
	require.NoError(t, err)
	assert.EqualError(t, tools.Validate(req), "invalid arguments: point.y is required")

	req, err = tools.Decode[echoRequest]([]byte(`{"point":{}}`))
	require.NoError(t, err)
	assert.EqualError(t, tools.Validate(req), "invalid arguments: text is required, point.x is required, point.y is required")

	_, err = tools.Decode[echoRequest]([]byte(`{"text":"hi","point":{"x":"1"}}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tools.ErrInvalidInput))
	assert.Contains(t, err.Error(), "invalid arguments: json: cannot unmarshal string")

	var nilReq *echoRequest
	assert.EqualError(t, tools.Validate(nilReq), "invalid arguments: missing request")
}

func TestDispatcher(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d, err := tools.NewDispatcher(&echoTool{name: "echo"}, &echoTool{name: "panic", panic: true})
	require.NoError(t, err)
	d.WithCallback(rec)

	ctx := context.Background()

	t.Run("catalog", func(t *testing.T) {
		list := d.Catalog()
		require.Len(t, list, 2)
		names := []string{list[0].Name, list[1].Name}
		if diff := cmp.Diff([]string{"echo", "panic"}, names); diff != "" {
			t.Errorf("catalog order mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "Echoes the text.", list[0].Description)
		assert.Equal(t, []string{"text"}, list[0].InputSchema.Required)
		assert.Len(t, d.Tools(), 2)
	})

	t.Run("success", func(t *testing.T) {
		res := d.Dispatch(ctx, "echo", map[string]any{"text": "hello"})
		assert.False(t, res.Failed())
		assert.Equal(t, "echo: hello", res.Text)
	})

	t.Run("invalid", func(t *testing.T) {
		res := d.Dispatch(ctx, "echo", map[string]any{})
		assert.True(t, res.Failed())
		assert.Equal(t, "Error echoing: invalid arguments: text is required", res.Text)

		res = d.Dispatch(ctx, "echo", nil)
		assert.Equal(t, "Error echoing: invalid arguments: text is required", res.Text)
	})

	t.Run("unknown", func(t *testing.T) {
		res := d.Dispatch(ctx, "make_coffee", map[string]any{"text": "x"})
		assert.False(t, res.Failed())
		assert.Equal(t, "Unknown tool: make_coffee", res.Text)
	})

	t.Run("panic", func(t *testing.T) {
		var res tools.Result
		assert.NotPanics(t, func() {
			res = d.Dispatch(ctx, "panic", map[string]any{"text": "x"})
		})
		assert.True(t, res.Failed())
		assert.Equal(t, "Error executing panic: panic: boom", res.Text)
	})

	t.Run("unmarshalable", func(t *testing.T) {
		res := d.Dispatch(ctx, "echo", map[string]any{"text": make(chan int)})
		assert.True(t, res.Failed())
		assert.Contains(t, res.Text, "Error executing echo: invalid arguments")
	})
}

func TestDispatcher_Callback(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d, err := tools.NewDispatcher(&echoTool{name: "echo"})
	require.NoError(t, err)
	d.WithCallback(rec)

	ctx := context.Background()
	d.Dispatch(ctx, "echo", map[string]any{"text": "hi"})
	d.Dispatch(ctx, "echo", map[string]any{})
	d.Dispatch(ctx, "other", nil)

	exp := []string{
		`start:echo:{"text":"hi"}`,
		`end:echo:echo: hi`,
		`start:echo:{}`,
		`error:echo:invalid arguments: text is required`,
	}
	assert.Equal(t, exp, rec.events)
	assert.NotEmpty(t, rec.callID)

	// the logger callback must not panic on any event
	lc := tools.NewPackageLoggerCallback(nil)
	d.WithCallback(lc)
	d.Dispatch(ctx, "echo", map[string]any{"text": "hi"})
	d.Dispatch(ctx, "echo", map[string]any{})
}

func TestNewDispatcher_Duplicate(t *testing.T) {
	t.Parallel()

	_, err := tools.NewDispatcher(&echoTool{name: "echo"}, &echoTool{name: "echo"})
	assert.EqualError(t, err, "duplicate tool: echo")
}

func TestCallID(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tools.CallID(context.Background()))
	assert.Equal(t, "abc", tools.CallID(tools.WithCallID(context.Background(), "abc")))
}
