package result

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// record is the flat, machine-readable form of a LinkResult.
type record struct {
	URL            string        `json:"url"`
	OK             bool          `json:"ok"`
	Outcome        string        `json:"outcome"`
	StatusCode     int           `json:"status_code,omitempty"`
	Error          string        `json:"error,omitempty"`
	ErrorType      ErrorCategory `json:"error_type,omitempty"`
	SourceDocument string        `json:"source_document,omitempty"`
	IsExternal     bool          `json:"is_external"`
	ElapsedMS      int64         `json:"elapsed_ms"`
}

func toRecord(link LinkResult) record {
	rec := record{
		URL:            link.URL,
		OK:             link.Outcome.IsOK(),
		Outcome:        link.Outcome.Kind.String(),
		StatusCode:     link.Outcome.StatusCode,
		ErrorType:      link.ErrorCategory,
		SourceDocument: link.SourceDocument,
		IsExternal:     link.IsExternal,
		ElapsedMS:      link.Elapsed.Milliseconds(),
	}
	if err := link.Outcome.Err(); err != nil {
		rec.Error = err.Error()
	}
	return rec
}

// WriteJSON writes every checked link as a formatted JSON array to the writer.
// Uses flat array format (not wrapped with metadata) for simpler CI integration.
func WriteJSON(w io.Writer, links []LinkResult) error {
	records := make([]record, 0, len(links))
	for _, link := range links {
		records = append(records, toRecord(link))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write json output: %w", err)
	}
	return nil
}

// WriteCSV writes every checked link as CSV to the writer.
// Always includes a header row, even if there are no links.
// Column order: url, outcome, status_code, error_type, error, source_document, is_external
func WriteCSV(w io.Writer, links []LinkResult) error {
	cw := csv.NewWriter(w)

	header := []string{"url", "outcome", "status_code", "error_type", "error", "source_document", "is_external"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, link := range links {
		rec := toRecord(link)
		row := []string{
			rec.URL,
			rec.Outcome,
			statusCodeStr(rec.StatusCode),
			string(rec.ErrorType),
			rec.Error,
			rec.SourceDocument,
			strconv.FormatBool(rec.IsExternal),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv record for %s: %w", link.URL, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}

// statusCodeStr converts an HTTP status code to a string.
// Returns empty string for 0 (no HTTP status).
func statusCodeStr(code int) string {
	if code == 0 {
		return ""
	}
	return strconv.Itoa(code)
}
