package lifeskill

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Grit", "grit"},
		{"Leadership!!", "leadership"},
		{"Self Control", "self-control"},
		{"  Mental   Toughness  ", "mental-toughness"},
		{"Focus & Calm", "focus-calm"},
		{"---respect---", "respect"},
		{"Top 10 Habits", "top-10-habits"},
		{"", ""},
		{"!!!", ""},
	}

	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	topics := []string{"Leadership!!", "Self Control", "Grit", "Top 10 Habits", "Été à la plage"}
	for _, topic := range topics {
		once := Slugify(topic)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", topic, once, twice)
		}
	}
}

func TestSlugify_CharacterSet(t *testing.T) {
	slug := Slugify("  Wax On, Wax Off: The 'Crane' Kick! (1984)  ")
	if slug == "" {
		t.Fatal("expected non-empty slug")
	}
	if slug[0] == '-' || slug[len(slug)-1] == '-' {
		t.Errorf("slug %q starts or ends with a hyphen", slug)
	}
	for _, r := range slug {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			t.Errorf("slug %q contains invalid rune %q", slug, r)
		}
	}
}
