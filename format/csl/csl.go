// Package csl provides CSL-JSON (Citation Style Language) serializers for
// the source table: a plain rendering with literal author names, and the
// ESSD rendering with parsed names, DOI preference, and non-Latin author
// names folded into the title.
package csl

import "github.com/glenglat/curator/format"

// Version documents the CSL specification this implementation targets.
const Version = "1.0.2"

// Format implements the CSL-JSON serializers.
type Format struct {
	// ESSD selects the ESSD journal rendering.
	ESSD bool
}

// Ensure Format implements the interface
var _ format.Serializer = (*Format)(nil)

// Name returns the format identifier.
func (f *Format) Name() string {
	if f.ESSD {
		return "essd"
	}
	return "csl"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	if f.ESSD {
		return "CSL-JSON for ESSD submission (parsed person names)"
	}
	return "CSL-JSON (Citation Style Language v" + Version + ")"
}

func init() {
	format.Register(&Format{})
	format.Register(&Format{ESSD: true})
}
