package format

import (
	"io"
	"testing"

	"github.com/glenglat/curator/source"
)

type fakeSerializer struct{ name string }

func (f *fakeSerializer) Name() string        { return f.name }
func (f *fakeSerializer) Description() string { return "fake" }
func (f *fakeSerializer) Serialize(w io.Writer, sources []source.Source, opts *Options) error {
	return nil
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeSerializer{name: "alpha"})
	r.Register(&fakeSerializer{name: "beta"})

	s, err := r.Get("alpha")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if s.Name() != "alpha" {
		t.Errorf("Name() = %q, want %q", s.Name(), "alpha")
	}

	if _, err := r.Get("missing"); err == nil {
		t.Error("Get for unknown name succeeded, want error")
	}

	names := r.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("List() = %v, want sorted [alpha beta]", names)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeSerializer{name: "csl"})
	if _, err := r.Get("CSL"); err != nil {
		t.Errorf("Get(\"CSL\") returned error: %v", err)
	}
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions()
	if !opts.Pretty {
		t.Error("NewOptions().Pretty = false, want true")
	}
	if opts.FailFast {
		t.Error("NewOptions().FailFast = true, want false")
	}
}
