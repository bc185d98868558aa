package assistant

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "just a plain answer", "just a plain answer"},
		{"bold asterisks", "**bold** text", "bold text"},
		{"bold underscores", "__bold__ text", "bold text"},
		{"italic asterisks", "*italic* text", "italic text"},
		{"italic underscores", "_italic_ text", "italic text"},
		{"header", "## Heading\nbody", "Heading\nbody"},
		{"fenced code dropped", "before\n```\nsecret code\n```\nafter", "before\n\nafter"},
		{"inline code unwrapped", "use `go build` here", "use go build here"},
		{"link collapsed to label", "see [the docs](https://example.com) now", "see the docs now"},
		{"strikethrough", "~~removed~~ stays", "removed stays"},
		{"blank line runs collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"surrounding whitespace trimmed", "  \n answer \n\n", "answer"},
		{
			"mixed constructs",
			"## Summary\n\n**Bold** and *italic* and `code`.\n\n```\nblock\n```\n\n[link](https://example.com) ~~old~~",
			"Summary\n\nBold and italic and code.\n\nlink old",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"**bold** and _italic_",
		"# Header\n\n`code` [label](http://x) ~~strike~~",
		"text\n\n\n\nwith gaps",
		"plain already",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
