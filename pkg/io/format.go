package io

import (
	"fmt"
	"strings"
)

// Format selects the registry encoding.
type Format int

const (
	// FormatBinary is MessagePack.
	FormatBinary Format = iota
	// FormatText is two-space indented JSON.
	FormatText
)

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "msgpack"
	case FormatText:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "msgpack"/"binary" and "json"/"text".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "msgpack", "binary":
		return FormatBinary, nil
	case "json", "text":
		return FormatText, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want msgpack or json)", s)
	}
}
