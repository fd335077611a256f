package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	apperrors "technova/internal/platform/errors"
)

// cache holds compiled schemas by name.
var cache sync.Map // map[string]*jsonschema.Schema

// Decode validates raw against the named schema and unmarshals it into dst.
// Parse and validation failures wrap apperrors.ErrInvalidArgument.
func Decode(name, definition string, raw []byte, dst any) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%s request is not valid JSON: %w", name, errors.Join(apperrors.ErrInvalidArgument, err))
	}
	compiled, err := compiled(name, definition)
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("%s request: %w", name, errors.Join(apperrors.ErrInvalidArgument, err))
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s request: %w", name, errors.Join(apperrors.ErrInvalidArgument, err))
	}
	return nil
}

func compiled(name, definition string) (*jsonschema.Schema, error) {
	if cached, ok := cache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(definition))
	if err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %q: %w", name, err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}
	actual, _ := cache.LoadOrStore(name, s)
	return actual.(*jsonschema.Schema), nil
}
