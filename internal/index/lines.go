package index

import "strings"

// LineIndex stores byte offsets for each line in a block of text
type LineIndex struct {
	starts []int // byte offset of each line start
	ends   []int // byte offset just past each line, terminator excluded
	text   string
}

// Build scans text and builds a line offset index.
// Lines end at "\n" or "\r\n". A trailing terminator does not start a new
// line, so empty text has no lines at all.
func Build(text string) *LineIndex {
	// Estimate initial capacity (assume ~100 bytes per line)
	estimatedLines := len(text)/100 + 1
	idx := &LineIndex{
		starts: make([]int, 0, estimatedLines),
		ends:   make([]int, 0, estimatedLines),
		text:   text,
	}

	pos := 0
	for pos < len(text) {
		nl := strings.IndexByte(text[pos:], '\n')
		if nl == -1 {
			idx.starts = append(idx.starts, pos)
			idx.ends = append(idx.ends, len(text))
			break
		}

		end := pos + nl
		if end > pos && text[end-1] == '\r' {
			end--
		}
		idx.starts = append(idx.starts, pos)
		idx.ends = append(idx.ends, end)
		pos += nl + 1
	}

	return idx
}

// LineCount returns the total number of lines
func (idx *LineIndex) LineCount() int {
	return len(idx.starts)
}

// Line returns the content of line at given index (0-based)
func (idx *LineIndex) Line(lineNum int) string {
	if lineNum < 0 || lineNum >= len(idx.starts) {
		return ""
	}
	return idx.text[idx.starts[lineNum]:idx.ends[lineNum]]
}
