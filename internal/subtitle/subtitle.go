package subtitle

import (
	"fmt"
	"io"
	"strings"
)

// represents single SRT cue; timestamps are kept verbatim
type Cue struct {
	Index int
	Start string
	End   string
	Text  string
}

// represents complete SRT document
type Document struct {
	Cues []Cue
}

// interface for writing subtitles to files
type Writer interface {
	Write(doc *Document, path string) error
}

// renders cue as an SRT block terminated by a blank line
func (c Cue) String() string {
	return fmt.Sprintf("%d\n%s --> %s\n%s\n\n", c.Index, c.Start, c.End, c.Text)
}

// renders the SRT body; empty document yields empty string
func (d *Document) String() string {
	if d == nil {
		return ""
	}
	var sb strings.Builder
	for _, cue := range d.Cues {
		sb.WriteString(cue.String())
	}
	return sb.String()
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Cues)
}
