package runtime

import (
	"bufio"
	"io"
	"strings"
)

// InputSource supplies lines of text for the read primitive. The driver
// wires stdin (or an interactive prompt) here; tests supply fixed text.
type InputSource interface {
	// ReadLine returns the next input line without its line terminator.
	ReadLine() (string, error)
}

// LineSource reads newline-delimited input from an io.Reader.
type LineSource struct {
	r *bufio.Reader
}

// NewLineSource wraps r in a buffered line reader.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: bufio.NewReader(r)}
}

// ReadLine returns the next line. A final line without a trailing newline
// is still a line; an empty source returns io.EOF.
func (s *LineSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if len(line) == 0 && err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
