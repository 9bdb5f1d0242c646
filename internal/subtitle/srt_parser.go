package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// reads an SRT document; timestamps are kept as written
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *Cue
	var textLines []string
	timed := false
	lineNum := 0

	flush := func() {
		if current != nil && timed {
			current.Text = strings.Join(textLines, "\n")
			doc.Cues = append(doc.Cues, *current)
		}
		current = nil
		textLines = nil
		timed = false
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			if current != nil && !timed {
				return nil, fmt.Errorf("missing timing line for cue %d at line %d", current.Index, lineNum)
			}
			flush()
			continue
		}

		if current == nil {
			index, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil {
				return nil, fmt.Errorf("invalid cue index %q at line %d", line, lineNum)
			}
			current = &Cue{Index: index}
			continue
		}

		if !timed {
			start, end, ok := strings.Cut(line, "-->")
			if !ok {
				return nil, fmt.Errorf("invalid timing line %q at line %d", line, lineNum)
			}
			current.Start = strings.TrimSpace(start)
			current.End = strings.TrimSpace(end)
			timed = true
			continue
		}

		textLines = append(textLines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT: %w", err)
	}
	if current != nil && !timed {
		return nil, fmt.Errorf("missing timing line for cue %d at line %d", current.Index, lineNum)
	}
	flush()

	return doc, nil
}

func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
