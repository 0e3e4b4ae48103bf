package tui

import (
	"regexp"
	"strings"
)

// Snapshot is an immutable copy of a terminal buffer's cells, used for
// programmatic inspection: headless testing, recording, and pattern-based
// scraping of the rendered output.
type Snapshot struct {
	width, height int
	cells         []Cell
}

// NewSnapshot copies surf's cells into an independent Snapshot.
func NewSnapshot(surf *Surface) *Snapshot {
	cells := make([]Cell, len(surf.cells))
	copy(cells, surf.cells)
	return &Snapshot{width: surf.Width, height: surf.Height, cells: cells}
}

// Width and Height report the snapshot's dimensions.
func (s *Snapshot) Width() int  { return s.width }
func (s *Snapshot) Height() int { return s.height }

func (s *Snapshot) at(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// GetLine returns the display text of row y, continuation cells skipped,
// or "" if y is out of range.
func (s *Snapshot) GetLine(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		c := s.at(x, y)
		if c.IsContinuation() {
			continue
		}
		b.WriteString(c.Char)
	}
	return b.String()
}

// GetDisplayText returns every line joined with "\n".
func (s *Snapshot) GetDisplayText() string {
	lines := make([]string, s.height)
	for y := 0; y < s.height; y++ {
		lines[y] = s.GetLine(y)
	}
	return strings.Join(lines, "\n")
}

// ContainsText reports whether any line contains the literal substring s.
func (s *Snapshot) ContainsText(needle string) bool {
	return strings.Contains(s.GetDisplayText(), needle)
}

// HasForeground reports whether any cell in the snapshot uses fg as its
// foreground color.
func (s *Snapshot) HasForeground(fg Color) bool {
	for _, c := range s.cells {
		if c.FG.Set && c.FG.Color == fg {
			return true
		}
	}
	return false
}

// HasBackground reports whether any cell in the snapshot uses bg as its
// background color.
func (s *Snapshot) HasBackground(bg Color) bool {
	for _, c := range s.cells {
		if c.BG.Set && c.BG.Color == bg {
			return true
		}
	}
	return false
}

// Match is one pattern-search hit, with coordinates relative to the
// snapshot (or region) that was searched.
type Match struct {
	StartLine, StartCol int
	EndLine, EndCol      int
	Text                 string
}

// FindPattern returns every non-overlapping match of re against line y.
func (s *Snapshot) FindPattern(y int, re *regexp.Regexp) []Match {
	line := s.GetLine(y)
	var out []Match
	for _, loc := range re.FindAllStringIndex(line, -1) {
		out = append(out, Match{
			StartLine: y, StartCol: loc[0],
			EndLine: y, EndCol: loc[1],
			Text: line[loc[0]:loc[1]],
		})
	}
	return out
}

// FindFirstPattern returns the first match of re on line y, or nil.
func (s *Snapshot) FindFirstPattern(y int, re *regexp.Regexp) *Match {
	matches := s.FindPattern(y, re)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

// ContainsPattern reports whether re matches anywhere on line y.
func (s *Snapshot) ContainsPattern(y int, re *regexp.Regexp) bool {
	return re.MatchString(s.GetLine(y))
}

// FindMultiLinePattern joins lines [fromLine, toLine] with sep (default
// "\n"; pass a nil *string for direct concatenation) and searches the
// joined text for re, translating byte offsets back to (line, col)
// snapshot coordinates. When trimLines is true, trailing padding spaces
// are stripped from each line before joining, which matters for
// line-oriented regexes that shouldn't see a ragged right edge; set it to
// false to preserve raw padded lines for column-sensitive patterns.
func (s *Snapshot) FindMultiLinePattern(fromLine, toLine int, sep *string, trimLines bool, re *regexp.Regexp) []Match {
	separator := "\n"
	if sep != nil {
		separator = *sep
	}
	if toLine >= s.height {
		toLine = s.height - 1
	}
	if fromLine < 0 {
		fromLine = 0
	}
	if fromLine > toLine {
		return nil
	}

	type lineSpan struct {
		line        int
		startOffset int
		text        string
	}
	var spans []lineSpan
	var joined strings.Builder
	for y := fromLine; y <= toLine; y++ {
		line := s.GetLine(y)
		if trimLines {
			line = strings.TrimRight(line, " ")
		}
		spans = append(spans, lineSpan{line: y, startOffset: joined.Len(), text: line})
		joined.WriteString(line)
		if y != toLine {
			joined.WriteString(separator)
		}
	}
	text := joined.String()

	offsetToLineCol := func(offset int) (line, col int) {
		for i, sp := range spans {
			end := sp.startOffset + len(sp.text)
			if offset <= end || i == len(spans)-1 {
				return sp.line, offset - sp.startOffset
			}
		}
		return spans[len(spans)-1].line, 0
	}

	var out []Match
	for _, loc := range re.FindAllStringIndex(text, -1) {
		startLine, startCol := offsetToLineCol(loc[0])
		endLine, endCol := offsetToLineCol(loc[1])
		out = append(out, Match{
			StartLine: startLine, StartCol: startCol,
			EndLine: endLine, EndCol: endCol,
			Text: text[loc[0]:loc[1]],
		})
	}
	return out
}

// Region is a sub-rectangle of a Snapshot, used to scope pattern queries
// to a portion of the buffer (e.g. one pane of a split). Coordinates
// returned by Region's query methods are relative to the region's origin,
// not the parent snapshot.
type Region struct {
	parent      *Snapshot
	x, y, w, h int
}

// Sub returns a Region of s bounded by rect, clipped to the snapshot.
func (s *Snapshot) Sub(rect Rect) *Region {
	clipped := rect.Intersect(Rect{Width: s.width, Height: s.height})
	return &Region{parent: s, x: clipped.X, y: clipped.Y, w: clipped.Width, h: clipped.Height}
}

// GetLine returns row y (region-relative) of the region.
func (r *Region) GetLine(y int) string {
	if y < 0 || y >= r.h {
		return ""
	}
	var b strings.Builder
	for x := 0; x < r.w; x++ {
		c := r.parent.at(r.x+x, r.y+y)
		if c.IsContinuation() {
			continue
		}
		b.WriteString(c.Char)
	}
	return b.String()
}

// FindPattern is FindPattern scoped to the region, in region-relative
// coordinates.
func (r *Region) FindPattern(y int, re *regexp.Regexp) []Match {
	line := r.GetLine(y)
	var out []Match
	for _, loc := range re.FindAllStringIndex(line, -1) {
		out = append(out, Match{StartLine: y, StartCol: loc[0], EndLine: y, EndCol: loc[1], Text: line[loc[0]:loc[1]]})
	}
	return out
}
