package markdown

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		expected []string
	}{
		{
			name:     "inline link",
			markdown: "[objc.io](https://www.objc.io)",
			expected: []string{"https://www.objc.io"},
		},
		{
			name:     "fragment link kept raw",
			markdown: "[local](#local)",
			expected: []string{"#local"},
		},
		{
			name: "reference link",
			markdown: "See [the docs][docs].\n\n" +
				"[docs]: https://example.com/docs\n",
			expected: []string{"https://example.com/docs"},
		},
		{
			name:     "angle bracket autolink",
			markdown: "<https://example.com/auto>",
			expected: []string{"https://example.com/auto"},
		},
		{
			name:     "bare URL is linkified",
			markdown: "Visit https://example.com/bare today.",
			expected: []string{"https://example.com/bare"},
		},
		{
			name:     "inline raw html anchor",
			markdown: `Text with <a href="https://example.com/inline">an anchor</a>.`,
			expected: []string{"https://example.com/inline"},
		},
		{
			name:     "html block anchor",
			markdown: "<div>\n<a href=\"https://example.com/block\">Block</a>\n</div>\n",
			expected: []string{"https://example.com/block"},
		},
		{
			name:     "duplicates are preserved",
			markdown: "[a](https://example.com) and [b](https://example.com)",
			expected: []string{"https://example.com", "https://example.com"},
		},
		{
			name:     "images are not links",
			markdown: "![logo](https://example.com/logo.png)",
			expected: nil,
		},
		{
			name:     "links in code are ignored",
			markdown: "`[x](https://example.com/code)`\n\n```\n[y](https://example.com/fenced)\n```\n",
			expected: nil,
		},
		{
			name:     "empty document",
			markdown: "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLinks([]byte(tt.markdown))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ExtractLinks() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractLinks_SampleDocument(t *testing.T) {
	doc := `- [objc.io](https://www.objc.io)
- [local](#local)
- [401](http://httpstat.us/401)
- [timeout](http://httpstat.us/200?sleep=30000)
`
	want := []string{
		"https://www.objc.io",
		"#local",
		"http://httpstat.us/401",
		"http://httpstat.us/200?sleep=30000",
	}

	got := ExtractLinks([]byte(doc))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLinks() = %q, want %q", got, want)
	}
}

func TestExtract(t *testing.T) {
	got, err := Extract(strings.NewReader("[x](https://example.com/x)"))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if len(got) != 1 || got[0] != "https://example.com/x" {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(path, []byte("[home](https://example.com/)\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error: %v", err)
	}
	if len(got) != 1 || got[0] != "https://example.com/" {
		t.Errorf("ExtractFile() = %q", got)
	}

	if _, err := ExtractFile(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Error("ExtractFile() on missing file should return an error")
	}
}

func TestAnchorHrefs(t *testing.T) {
	got := anchorHrefs(strings.NewReader(`<p><a href="/one">1</a><img src="/x.png"><a name="top"></a><a href="https://two.example.com"/></p>`))
	want := []string{"/one", "https://two.example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("anchorHrefs() = %q, want %q", got, want)
	}
}
