package person

import (
	"errors"
	"testing"
)

func TestParsePerson(t *testing.T) {
	tests := []struct {
		token    string
		title    string
		original *NameRef
		latin    NameRef
		script   Script
		id       *Identifier
	}{
		{
			token:  "Jakob F. Steiner",
			title:  "Jakob F. Steiner",
			latin:  NameRef{Full: "Jakob F. Steiner", Family: "Steiner", Given: "Jakob F."},
			script: Latin,
		},
		{
			token:  "Mjöll",
			title:  "Mjöll",
			latin:  NameRef{Full: "Mjöll", Family: "Mjöll"},
			script: Latin,
		},
		{
			token:  "Emmanuel {Le Meur} (test@email.fr)",
			title:  "Emmanuel Le Meur",
			latin:  NameRef{Full: "Emmanuel Le Meur", Family: "Le Meur", Given: "Emmanuel"},
			script: Latin,
			id:     &Identifier{Kind: Email, Value: "test@email.fr"},
		},
		{
			token:    "杉山 慎 [Sugiyama Shin] (0000-0001-5323-9558)",
			title:    "杉山 慎 [Sugiyama Shin]",
			original: &NameRef{Full: "杉山 慎", Family: "杉山", Given: "慎"},
			latin:    NameRef{Full: "Sugiyama Shin", Family: "Sugiyama", Given: "Shin"},
			script:   Kanji,
			id:       &Identifier{Kind: Orcid, Value: "https://orcid.org/0000-0001-5323-9558"},
		},
		{
			// Family recurs as a prefix of the given name; the brace span
			// position must win over substring search.
			token:  "Ann {An}",
			title:  "Ann An",
			latin:  NameRef{Full: "Ann An", Family: "An", Given: "Ann"},
			script: Latin,
		},
		{
			// Two-word ideograph names are Kanji on the braced path too.
			token:    "杉山 {慎} [Sugiyama {Shin}]",
			title:    "杉山 慎 [Sugiyama Shin]",
			original: &NameRef{Full: "杉山 慎", Family: "慎", Given: "杉山"},
			latin:    NameRef{Full: "Sugiyama Shin", Family: "Shin", Given: "Sugiyama"},
			script:   Kanji,
		},
		{
			token:  "Josephine Hagen (0000-0002-1825-009X)",
			title:  "Josephine Hagen",
			latin:  NameRef{Full: "Josephine Hagen", Family: "Hagen", Given: "Josephine"},
			script: Latin,
			id:     &Identifier{Kind: Orcid, Value: "https://orcid.org/0000-0002-1825-009X"},
		},
		{
			token:    "张通 [Zhang Tong]",
			title:    "张通 [Zhang Tong]",
			original: &NameRef{Full: "张通", Family: "张", Given: "通"},
			latin:    NameRef{Full: "Zhang Tong", Family: "Zhang", Given: "Tong"},
			script:   Chinese,
		},
		{
			token:    "Н. Г. Разумейко [N. G. Razumeiko]",
			title:    "Н. Г. Разумейко [N. G. Razumeiko]",
			original: &NameRef{Full: "Н. Г. Разумейко", Family: "Разумейко", Given: "Н. Г."},
			latin:    NameRef{Full: "N. G. Razumeiko", Family: "Razumeiko", Given: "N. G."},
			script:   Cyrillic,
		},
		{
			token:    "안진호 [Ahn Jinho]",
			title:    "안진호 [Ahn Jinho]",
			original: &NameRef{Full: "안진호", Family: "안", Given: "진호"},
			latin:    NameRef{Full: "Ahn Jinho", Family: "Ahn", Given: "Jinho"},
			script:   Hangul,
		},
		{
			token:    "ゆき ちゃん [Yuki Chan]",
			title:    "ゆき ちゃん [Yuki Chan]",
			original: &NameRef{Full: "ゆき ちゃん", Family: "ゆき", Given: "ちゃん"},
			latin:    NameRef{Full: "Yuki Chan", Family: "Yuki", Given: "Chan"},
			script:   Kana,
		},
		{
			token:    "Эмманюэль {Ле Мер} [Emmanuel {Le Meur}]",
			title:    "Эмманюэль Ле Мер [Emmanuel Le Meur]",
			original: &NameRef{Full: "Эмманюэль Ле Мер", Family: "Ле Мер", Given: "Эмманюэль"},
			latin:    NameRef{Full: "Emmanuel Le Meur", Family: "Le Meur", Given: "Emmanuel"},
			script:   Cyrillic,
		},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p, err := ParsePerson(tt.token)
			if err != nil {
				t.Fatalf("ParsePerson(%q) returned error: %v", tt.token, err)
			}
			if p.Title != tt.title {
				t.Errorf("Title = %q, want %q", p.Title, tt.title)
			}
			if tt.original == nil {
				if p.Original != nil {
					t.Errorf("Original = %+v, want nil", *p.Original)
				}
			} else if p.Original == nil || *p.Original != *tt.original {
				t.Errorf("Original = %+v, want %+v", p.Original, *tt.original)
			}
			if p.Latin != tt.latin {
				t.Errorf("Latin = %+v, want %+v", p.Latin, tt.latin)
			}
			if p.Script != tt.script {
				t.Errorf("Script = %v, want %v", p.Script, tt.script)
			}
			if tt.id == nil {
				if p.Identifier != nil {
					t.Errorf("Identifier = %+v, want nil", *p.Identifier)
				}
			} else if p.Identifier == nil || *p.Identifier != *tt.id {
				t.Errorf("Identifier = %+v, want %+v", p.Identifier, *tt.id)
			}
		})
	}
}

func TestParsePersonErrors(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"leading whitespace", " Jane Doe"},
		{"trailing whitespace", "Jane Doe "},
		{"pipe in phrase", "Jane|Doe"},
		{"stray parenthesis", "Jane (Doe) Smith"},
		{"stray bracket", "Jane [Doe] Smith"},
		{"bad identifier", "John Smith (12345)"},
		{"bad orcid checksum digit", "John Smith (0000-0001-5323-955Y)"},
		{"unbalanced braces", "Jane {Doe"},
		{"empty brace span", "Jane {}Doe"},
		{"braces on one side only", "Эмманюэль {Ле Мер} [Emmanuel Le Meur]"},
		{"latin with transliteration", "Emmanuel [Le Meur]"},
		{"ambiguous particles", "Jon Ove Van Pelt"},
		{"abbreviated last word", "Jane D."},
		{"unsupported script", "Γιάννης Παπαδόπουλος"},
		{"single hangul character", "안 [Ahn Jinho]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePerson(tt.token); err == nil {
				t.Errorf("ParsePerson(%q) succeeded, want error", tt.token)
			}
		})
	}
}

func TestParseTitleSkipsInference(t *testing.T) {
	// Heuristically ambiguous, but the title must still come out so the
	// registry can match a curated variant.
	title, id, err := ParseTitle("Lander Van Tricht")
	if err != nil {
		t.Fatalf("ParseTitle returned error: %v", err)
	}
	if title != "Lander Van Tricht" {
		t.Errorf("title = %q, want %q", title, "Lander Van Tricht")
	}
	if id != nil {
		t.Errorf("identifier = %+v, want nil", *id)
	}
}

func TestParseTitleStripsBraces(t *testing.T) {
	title, id, err := ParseTitle("Emmanuel {Le Meur} (0000-0002-0473-7860)")
	if err != nil {
		t.Fatalf("ParseTitle returned error: %v", err)
	}
	if title != "Emmanuel Le Meur" {
		t.Errorf("title = %q, want %q", title, "Emmanuel Le Meur")
	}
	if id == nil || id.Value != "https://orcid.org/0000-0002-0473-7860" {
		t.Errorf("identifier = %+v, want ORCID URI", id)
	}
}

func TestParseList(t *testing.T) {
	persons, err := ParseList("Jakob F. Steiner | 杉山 慎 [Sugiyama Shin]")
	if err != nil {
		t.Fatalf("ParseList returned error: %v", err)
	}
	if len(persons) != 2 {
		t.Fatalf("len(persons) = %d, want 2", len(persons))
	}
	if persons[0].Latin.Family != "Steiner" {
		t.Errorf("persons[0].Latin.Family = %q, want %q", persons[0].Latin.Family, "Steiner")
	}
	if persons[1].Original == nil || persons[1].Original.Family != "杉山" {
		t.Errorf("persons[1].Original = %+v, want family 杉山", persons[1].Original)
	}
}

func TestParseListCollectsAllErrors(t *testing.T) {
	_, err := ParseList("Jon Ove Van Pelt | Jakob F. Steiner | John Smith (12345)")
	if err == nil {
		t.Fatal("ParseList succeeded, want batch error")
	}
	var batch *BatchError
	if !errors.As(err, &batch) {
		t.Fatalf("error is %T, want *BatchError", err)
	}
	if len(batch.Errors) != 2 {
		t.Errorf("len(batch.Errors) = %d, want 2", len(batch.Errors))
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		field string
		want  int
	}{
		{"", 0},
		{"Jane Doe", 1},
		{"Jane Doe | John Smith", 2},
	}
	for _, tt := range tests {
		if got := SplitList(tt.field); len(got) != tt.want {
			t.Errorf("SplitList(%q) = %v, want %d tokens", tt.field, got, tt.want)
		}
	}
}
