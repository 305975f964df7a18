package ale

import (
	"strings"
	"testing"
)

func TestExtractEpisodeNumber(t *testing.T) {
	conv := DefaultConvention()
	cases := []struct {
		name string
		want string
		ok   bool
	}{
		{"NJ-0042-000101", "0042", true},
		{"PLAN-NJ-1234", "1234", true},
		{"NJ-123", "", false},
		{"LGS-0042-000101", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := conv.ExtractEpisodeNumber(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ExtractEpisodeNumber(%q) = %q, %v; want %q, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}

	legacy := DefaultConvention()
	legacy.EpisodePrefix = "LGS"
	if got, ok := legacy.ExtractEpisodeNumber("LGS-0042-000101"); !ok || got != "0042" {
		t.Fatalf("legacy prefix extraction = %q, %v", got, ok)
	}
}

func TestStoragePath(t *testing.T) {
	conv := DefaultConvention()
	want := `\\facilis\LGS_RUSHES\NATIFS\LGS_EP_0042\`
	if got := conv.StoragePath("0042"); got != want {
		t.Fatalf("StoragePath = %q, want %q", got, want)
	}
}

func TestMediaPathGroupsEpisodesByTen(t *testing.T) {
	conv := DefaultConvention()
	group := func(ep string) string {
		t.Helper()
		path, err := conv.MediaPath(ep)
		if err != nil {
			t.Fatalf("MediaPath(%s): %v", ep, err)
		}
		return strings.SplitN(strings.TrimPrefix(path, `\\nexis\`), `\`, 2)[0]
	}

	if group("0001") != group("0010") {
		t.Fatal("episodes 1 and 10 must share a group")
	}
	if group("0001") == group("0011") {
		t.Fatal("episode 11 must start a new group")
	}
	if got := group("0020"); got != "LGS_MTG_2" {
		t.Fatalf("episode 20 group = %s", got)
	}

	path, _ := conv.MediaPath("0011")
	if want := `\\nexis\LGS_MTG_2\Avid MediaFiles\MXF\EP0011`; path != want {
		t.Fatalf("MediaPath = %q, want %q", path, want)
	}
}

func TestEpisodeGroupRejectsNonNumeric(t *testing.T) {
	if _, err := DefaultConvention().MediaPath("00a1"); err == nil {
		t.Fatal("expected error for non-numeric episode")
	}
}

func TestConventionValidate(t *testing.T) {
	if err := DefaultConvention().Validate(); err != nil {
		t.Fatalf("default convention invalid: %v", err)
	}
	bad := DefaultConvention()
	bad.DecorMode = "both"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected decor mode error")
	}
	bad = DefaultConvention()
	bad.MediaTemplate = `\\nexis\MTG`
	if err := bad.Validate(); err == nil {
		t.Fatal("expected template error")
	}
}
