package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/matzehuels/cargoimport/pkg/registry"
)

// ReadRegistry decodes a registry document from r. JSON is recognized by
// its leading '{'; anything else is decoded as MessagePack. ReadRegistry
// does not close r.
func ReadRegistry(r io.Reader) (registry.Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	reg := registry.Registry{}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &reg); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return reg, nil
	}
	if err := msgpack.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("decode msgpack: %w", err)
	}
	return reg, nil
}

// ImportRegistry reads a registry document from the file at path.
func ImportRegistry(path string) (registry.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadRegistry(f)
}
