package result

import (
	"fmt"
	"io"
)

// DoneMessage is printed once every link has been checked.
const DoneMessage = "Link checking done"

// PrintResult writes a single link record to w. It is meant to be called
// as each probe resolves, so lines appear in completion order.
func PrintResult(w io.Writer, link LinkResult) {
	if link.Outcome.IsOK() {
		_, _ = fmt.Fprintf(w, "OK      %s\n", link.URL)
		return
	}
	_, _ = fmt.Fprintf(w, "BROKEN  %s (%s)\n", link.URL, link.Outcome)
	if link.SourceDocument != "" {
		_, _ = fmt.Fprintf(w, "        found in: %s\n", link.SourceDocument)
	}
}

// PrintDone writes the run summary followed by DoneMessage.
func PrintDone(w io.Writer, res *Result) {
	writef := func(format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

	if res != nil {
		writef("Checked %d links, found %d broken links (%s)\n",
			res.Stats.TotalChecked, res.Stats.BrokenCount, res.Stats.Duration.Round(1_000_000))
	}
	writef("%s\n", DoneMessage)
}
