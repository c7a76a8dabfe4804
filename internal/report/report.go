// Package report renders the console output of the cleaning pipeline:
// banners, numbered sections, formatted tables, and value summaries.
package report

import (
	"fmt"
	"io"
	"strings"
)

// dividerWidth is the length of the "=" separator between sections.
const dividerWidth = 50

// SectionWriter writes a sectioned plain-text report. It remembers the
// first write error, so callers can print an entire report and check
// Err once at the end.
type SectionWriter struct {
	w       io.Writer
	section int
	err     error
}

// NewSectionWriter creates a section writer targeting w.
func NewSectionWriter(w io.Writer) *SectionWriter {
	return &SectionWriter{w: w}
}

// Banner writes the "=== title ===" line that opens or closes a report.
func (s *SectionWriter) Banner(title string) {
	s.printf("=== %s ===\n", title)
}

// Section starts the next numbered section. Every section opens with a
// blank line, the "=" divider, and another blank line, separating it
// from whatever was printed before.
func (s *SectionWriter) Section(title string) {
	s.printf("\n%s\n\n", strings.Repeat("=", dividerWidth))
	s.section++
	s.printf("%d. %s:\n", s.section, title)
}

// Printf writes a formatted fragment.
func (s *SectionWriter) Printf(format string, args ...interface{}) {
	s.printf(format, args...)
}

// Println writes one line.
func (s *SectionWriter) Println(args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.w, args...)
}

// Blank writes an empty line.
func (s *SectionWriter) Blank() {
	s.printf("\n")
}

// Err returns the first error any write encountered.
func (s *SectionWriter) Err() error {
	return s.err
}

func (s *SectionWriter) printf(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}
