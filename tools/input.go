package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode unmarshals the JSON arguments into a new I.
// Empty input decodes into the zero value.
func Decode[I any](input []byte) (*I, error) {
	req := new(I)
	input = bytes.TrimSpace(input)
	if len(input) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(input, req); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid arguments"), ErrInvalidInput)
	}
	return req, nil
}

// Validate checks the `validate` tags of req
func Validate(req any) error {
	if v := reflect.ValueOf(req); req == nil || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return errors.Mark(errors.New("invalid arguments: missing request"), ErrInvalidInput)
	}
	if err := validate.Struct(req); err != nil {
		return errors.Mark(errors.Newf("invalid arguments: %s", describe(err)), ErrInvalidInput)
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// drop the request type name
		field := fe.Namespace()
		if _, after, ok := strings.Cut(field, "."); ok {
			field = after
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %q", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, ", ")
}
