// Package marshal renders query documents as JSON.
//
// The builder assembles documents as plain map[string]any values; this
// package is the single place they are turned into bytes. Rendering is
// configurable through a process-wide Config (see SetGlobalConfig) and
// through the ESB_MARSHAL_INDENT and ESB_MARSHAL_ESCAPE_HTML environment
// variables.
package marshal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	esberrors "github.com/searchforge/esb/pkg/errors"
)

// JSON renders a document as compact JSON
func JSON(doc map[string]any) ([]byte, error) {
	return encode(doc, "")
}

// Indent renders a document as indented JSON using the configured indent
func Indent(doc map[string]any) ([]byte, error) {
	return encode(doc, GetGlobalConfig().Indent)
}

// Reader renders a document as compact JSON and returns it as an
// io.Reader, ready to be used as a search request body
func Reader(doc map[string]any) (io.Reader, error) {
	raw, err := JSON(doc)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(raw), nil
}

func encode(doc map[string]any, indent string) ([]byte, error) {
	if doc == nil {
		return nil, esberrors.NewError("marshal", esberrors.ErrNilDocument)
	}

	cfg := GetGlobalConfig()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(cfg.EscapeHTML)
	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(doc); err != nil {
		return nil, esberrors.NewError("marshal", fmt.Errorf("%w: %v", esberrors.ErrEncode, err))
	}

	// Encoder.Encode appends a newline; callers expect bare JSON.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
