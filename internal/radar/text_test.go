package radar

import "testing"

func TestRemoveLinks(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"check [the docs](https://example.com/docs) first", "check the docs first"},
		{"see https://example.com now", "see  now"},
		{"no links here", "no links here"},
	}
	for _, tc := range cases {
		if got := RemoveLinks(tc.in); got != tc.want {
			t.Errorf("RemoveLinks(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFirstURL(t *testing.T) {
	if got := FirstURL("read https://a.example/one and https://b.example/two"); got != "https://a.example/one" {
		t.Errorf("got %q", got)
	}
	if got := FirstURL("nothing"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestMarkdownToText(t *testing.T) {
	got := MarkdownToText("# Title\n\nSome **bold** text.")
	if got != "Title Some bold text." {
		t.Errorf("got %q", got)
	}
}
