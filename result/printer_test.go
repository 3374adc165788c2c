package result

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestPrintResult_OK(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, NewLinkResult("https://www.objc.io", OK()))

	want := "OK      https://www.objc.io\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintResult_Broken(t *testing.T) {
	var buf bytes.Buffer
	link := NewLinkResult("http://httpstat.us/401", HTTPError(401))
	link.SourceDocument = "README.md"

	PrintResult(&buf, link)

	got := buf.String()
	if !strings.Contains(got, "BROKEN  http://httpstat.us/401 (HTTP 401 Unauthorized)") {
		t.Errorf("missing broken line, got %q", got)
	}
	if !strings.Contains(got, "found in: README.md") {
		t.Errorf("missing source document, got %q", got)
	}
}

func TestPrintDone(t *testing.T) {
	var buf bytes.Buffer
	r := &Result{
		Stats: CheckStats{TotalChecked: 3, BrokenCount: 2, Duration: 2 * time.Second},
	}

	PrintDone(&buf, r)

	want := "Checked 3 links, found 2 broken links (2s)\nLink checking done\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintDone_NilResult(t *testing.T) {
	var buf bytes.Buffer
	PrintDone(&buf, nil)

	if got := buf.String(); got != DoneMessage+"\n" {
		t.Errorf("got %q, want %q", got, DoneMessage+"\n")
	}
}
