package person

// Name is a bibliographic (CSL-style) name object: either a family/given
// pair or a single literal display string.
type Name struct {
	Family  string
	Given   string
	Literal string
}

// NameMode selects how a bibliographic name object is rendered.
type NameMode int

const (
	// LiteralMode emits a single literal string,
	// "{original} [{latin}]" or the Latin form alone.
	LiteralMode NameMode = iota
	// GivenMode emits a family/given pair, appending the original-script
	// name to the given name when one exists.
	GivenMode
)

// RenderBibliographyName projects a parsed person into a bibliographic
// name object. Registry resolution is not required: both modes degrade
// gracefully to the parsed parts.
func RenderBibliographyName(p *Parsed, mode NameMode) Name {
	switch mode {
	case GivenMode:
		if p.Original != nil {
			return Name{
				Family: p.Latin.Family,
				Given:  p.Latin.Given + " [" + p.Original.Full + "]",
			}
		}
		return Name{Family: p.Latin.Family, Given: p.Latin.Given}
	default:
		if p.Original != nil {
			return Name{Literal: p.Original.Full + " [" + p.Latin.Full + "]"}
		}
		return Name{Literal: p.Latin.Full}
	}
}
