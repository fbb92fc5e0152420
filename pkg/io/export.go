package io

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/matzehuels/cargoimport/pkg/errors"
	"github.com/matzehuels/cargoimport/pkg/registry"
)

// WriteRegistry encodes reg in format f and writes it to w. The whole
// document is encoded before anything is written, so a failed encode leaves
// w untouched.
func WriteRegistry(w io.Writer, reg registry.Registry, f Format) error {
	data, err := Encode(reg, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "write %s", f)
	}
	return nil
}

// Encode returns the encoding of reg in format f.
func Encode(reg registry.Registry, f Format) ([]byte, error) {
	if reg == nil {
		reg = registry.Registry{}
	}

	switch f {
	case FormatText:
		// Ranges such as ">= 1.0 < 2.0" are written literally, not as \u003e.
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode json")
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case FormatBinary:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetSortMapKeys(true)
		if err := enc.Encode(reg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode msgpack")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.New(errors.ErrCodeEncode, "unsupported format %s", f)
	}
}
