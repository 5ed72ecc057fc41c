// Package format defines the interface for citation output serializers.
package format

import (
	"io"

	"github.com/glenglat/curator/datapackage"
	"github.com/glenglat/curator/source"
)

// Serializer writes source records to an output format.
type Serializer interface {
	// Name returns the format identifier (e.g., "csl", "essd", "zenodo")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Serialize writes source records to the output.
	Serialize(w io.Writer, sources []source.Source, opts *Options) error
}

// Options contains options for serialization.
type Options struct {
	// Pretty enables pretty-printed JSON output
	Pretty bool

	// FailFast stops at the first malformed person token instead of
	// collecting every error across the batch
	FailFast bool

	// Package is the datapackage metadata, for serializers that emit
	// package-level records (e.g. Zenodo depositions)
	Package *datapackage.Package
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{Pretty: true}
}
