package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"  clip:01  ":    "clip-01",
		`a\b/c`:          "a-b-c",
		`what?"<>|`:      "what",
		"":               "",
		"NJ-0001-000101": "NJ-0001-000101",
	}
	for in, want := range cases {
		if got := SanitizeFileName(in); got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecoratedToken(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "", want: ""},
		{raw: "salon-bleu", want: "SALON-BLEU"},
		{raw: "Décor 12 rue", want: "DCORRUE"},
		{raw: "à", want: ""},
		{raw: "straße", want: "STRASSE"},
		{raw: "1234_%", want: ""},
		{raw: "Chambre-Ado!", want: "CHAMBRE-ADO"},
	}
	for _, tc := range cases {
		if got := DecoratedToken(tc.raw); got != tc.want {
			t.Fatalf("DecoratedToken(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDecodeDocument(t *testing.T) {
	t.Run("utf8 with bom", func(t *testing.T) {
		got := DecodeDocument([]byte("\xEF\xBB\xBFHeading\nColumn"))
		if got != "Heading\nColumn" {
			t.Fatalf("unexpected decode %q", got)
		}
	})
	t.Run("windows-1252 fallback", func(t *testing.T) {
		got := DecodeDocument([]byte("D\xe9cor"))
		if got != "Décor" {
			t.Fatalf("unexpected decode %q", got)
		}
	})
	t.Run("plain utf8 untouched", func(t *testing.T) {
		got := DecodeDocument([]byte("Décor"))
		if got != "Décor" {
			t.Fatalf("unexpected decode %q", got)
		}
	})
}
