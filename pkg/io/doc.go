// Package io serializes a consolidated registry.
//
// # Formats
//
// Two encodings are supported, selected with a [Format] value:
//
//   - [FormatBinary]: MessagePack, the default fixture encoding
//   - [FormatText]: indented JSON for reading and diffing
//
// Both encode the same nested mapping:
//
//	{
//	  "test/a": {
//	    "1.0.0": {"test/b": "^1.2.0"}
//	  },
//	  "test/b": {
//	    "1.2.0": {}
//	  }
//	}
//
// Map keys are written in sorted order in both formats, so the same
// registry always produces the same bytes.
//
// # Export
//
// Use [WriteRegistry] to write to any io.Writer:
//
//	err := io.WriteRegistry(os.Stdout, reg, io.FormatText)
//
// # Import
//
// [ReadRegistry] decodes either format back into a registry.Registry, for
// tools that work from a previously generated fixture instead of the index.
package io
