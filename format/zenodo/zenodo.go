// Package zenodo serializes the dataset's curated metadata as a Zenodo
// deposition: creator and contributor records projected from resolved
// person identities, and plain-text reference strings built from the
// source table.
package zenodo

import "github.com/glenglat/curator/format"

// Format implements the Zenodo deposition metadata serializer.
type Format struct{}

// Ensure Format implements the interface
var _ format.Serializer = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "zenodo"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Zenodo deposition metadata (creators, contributors, references)"
}

func init() {
	format.Register(&Format{})
}
