package person

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Script
	}{
		{"Jakob F. Steiner", Latin},
		{"Rune Strand Ødegård", Latin},
		{"Н. Г. Разумейко", Cyrillic},
		{"张通", Chinese},
		{"杉山 慎", Chinese},
		{"すぎやま しん", Kana},
		{"杉山 しん", Kana},
		{"안진호", Hangul},
		{"O'Neel", Latin},
		{"Jean-Baptiste", Latin},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Classify(tt.text)
			if err != nil {
				t.Fatalf("Classify(%q) returned error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyUnsupported(t *testing.T) {
	tests := []string{
		"Γιάννης",
		"דָּוִד",
		"...",
		"",
	}
	for _, text := range tests {
		_, err := Classify(text)
		if err == nil {
			t.Errorf("Classify(%q) succeeded, want error", text)
			continue
		}
		var unsupported *UnsupportedScriptError
		if !errors.As(err, &unsupported) {
			t.Errorf("Classify(%q) error is %T, want *UnsupportedScriptError", text, err)
		}
	}
}

func TestScriptString(t *testing.T) {
	tests := []struct {
		script Script
		want   string
	}{
		{Latin, "latin"},
		{Cyrillic, "cyrillic"},
		{Chinese, "chinese"},
		{Kanji, "kanji"},
		{Kana, "kana"},
		{Hangul, "hangul"},
		{ScriptUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.script.String(); got != tt.want {
			t.Errorf("Script(%d).String() = %q, want %q", tt.script, got, tt.want)
		}
	}
}
