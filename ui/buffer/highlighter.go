package buffer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

type Colorscheme map[Syntax]tcell.Style

// Gets the tcell.Style from the Colorscheme map for the given Syntax.
// If the Syntax cannot be found in the map, either the `Default` Syntax
// is used, or `tcell.StyleDefault` is returned if the Default is not assigned.
func (c *Colorscheme) GetStyle(s Syntax) tcell.Style {
	if c != nil {
		if val, ok := (*c)[s]; ok {
			return val // Try to return the requested value
		} else if s != Default {
			if val, ok := (*c)[Default]; ok {
				return val // Use default colorscheme value, instead
			}
		}
	}

	return tcell.StyleDefault // No value for Default; use default style.
}

// DefaultColorscheme uses only the first 16 colors present in most colored
// terminals.
var DefaultColorscheme = Colorscheme{
	Default:     tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	Column:      tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	Comment:     tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	DocComment:  tcell.Style{}.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	String:      tcell.Style{}.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack),
	Keyword:     tcell.Style{}.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack).Bold(true),
	Type:        tcell.Style{}.Foreground(tcell.ColorPurple).Background(tcell.ColorBlack),
	Number:      tcell.Style{}.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack),
	Builtin:     tcell.Style{}.Foreground(tcell.ColorTeal).Background(tcell.ColorBlack),
	Special:     tcell.Style{}.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack),
	Punctuation: tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
}

// A Match is a highlighted run of runes within one line. Regions spanning
// several lines produce one Match per line.
type Match struct {
	Col    int // First rune
	EndCol int // Last rune, inclusive
	Syntax Syntax
	Scope  string
}

type lineState struct {
	matches []Match
	valid   bool
	open    int // Index of the multi-line rule still open at the end of the line, or -1
}

// A Highlighter can answer how to color any part of a provided Buffer. It does
// so by applying the rules of a Language to each line, in order: at every scan
// position the leftmost match of any rule wins, and on a tie the rule listed
// first wins.
//
// Results are cached per line. Lines must be invalidated when they change;
// a change to the multi-line state at the end of a line invalidates the next.
type Highlighter struct {
	Buffer      Buffer
	Language    *Language
	Colorscheme *Colorscheme

	lines []lineState
}

func NewHighlighter(buffer Buffer, lang *Language, colorscheme *Colorscheme) *Highlighter {
	h := &Highlighter{
		Buffer:      buffer,
		Language:    lang,
		Colorscheme: colorscheme,
	}
	h.resize()
	return h
}

// resize keeps one lineState per buffer line.
func (h *Highlighter) resize() {
	lines := h.Buffer.Lines()
	if len(h.lines) > lines {
		h.lines = h.lines[:lines]
	}
	for len(h.lines) < lines {
		h.lines = append(h.lines, lineState{open: -1})
	}
}

// UpdateLines forces the highlighting matches for lines between startLine to
// endLine, inclusively, to be updated. Lines before startLine that have not
// been highlighted yet are highlighted first, because a region opened above
// may still be open. It is more efficient to mark lines as invalidated when
// changes occur and call UpdateInvalidatedLines(...).
func (h *Highlighter) UpdateLines(startLine, endLine int) {
	h.resize()
	if startLine < 0 {
		startLine = 0
	}
	for startLine > 0 && startLine < len(h.lines) && !h.lines[startLine-1].valid {
		startLine--
	}

	for i := startLine; i <= endLine && i < len(h.lines); i++ {
		h.updateLine(i)
	}
}

// UpdateInvalidatedLines brings lines startLine to endLine, inclusively, up to
// date by updating only invalidated lines. Invalidated lines above startLine
// are updated as well, since they decide the state carried into the range.
func (h *Highlighter) UpdateInvalidatedLines(startLine, endLine int) {
	h.resize()
	for i := 0; i <= endLine && i < len(h.lines); i++ {
		if !h.lines[i].valid {
			h.updateLine(i) // May invalidate line i+1
		}
	}
}

// updateLine highlights line i from the state the previous line left open.
// When the state open at its end changes, the next line is invalidated.
func (h *Highlighter) updateLine(i int) {
	open := -1
	if i > 0 {
		open = h.lines[i-1].open
	}

	prevOpen := h.lines[i].open
	matches, stillOpen := h.highlightLine(trimDelim(h.Buffer.Line(i)), open, nil)
	h.lines[i] = lineState{matches: matches, valid: true, open: stillOpen}

	if stillOpen != prevOpen && i+1 < len(h.lines) {
		h.lines[i+1].valid = false // Its starting state has changed
	}
}

func (h *Highlighter) HasInvalidatedLines(startLine, endLine int) bool {
	h.resize()
	for i := max(startLine, 0); i <= endLine && i < len(h.lines); i++ {
		if !h.lines[i].valid {
			return true
		}
	}
	return false
}

func (h *Highlighter) InvalidateLines(startLine, endLine int) {
	h.resize()
	for i := max(startLine, 0); i <= endLine && i < len(h.lines); i++ {
		h.lines[i].valid = false
	}
}

// GetLineMatches returns the matches of line sorted by column. The line must
// have been updated; invalidated lines may return stale data. The slice is
// not reused by later updates.
func (h *Highlighter) GetLineMatches(line int) []Match {
	if line < 0 || line >= len(h.lines) {
		return nil
	}
	return h.lines[line].matches
}

func (h *Highlighter) GetStyle(match Match) tcell.Style {
	return h.Colorscheme.GetStyle(match.Syntax)
}

// highlightLine scans text (one line without its delimiter) and appends its
// matches to dst. open is the multi-line rule left open by the previous line.
// It returns the rule still open at the end of text, or -1.
func (h *Highlighter) highlightLine(text []byte, open int, dst []Match) ([]Match, int) {
	rules := h.Language.Rules
	var pos int

	appendMatch := func(rule, start, end int) {
		if end <= start {
			return
		}
		dst = append(dst, Match{
			Col:    utf8.RuneCount(text[:start]),
			EndCol: utf8.RuneCount(text[:end]) - 1,
			Syntax: h.Language.Syntaxes[rule],
			Scope:  rules[rule].Scope,
		})
	}

	if open >= 0 {
		loc := find(rules[open].End, text, 0)
		if loc == nil {
			appendMatch(open, 0, len(text))
			return dst, open
		}
		appendMatch(open, 0, loc[1])
		pos = loc[1]
	}

	for pos < len(text) {
		best, bestStart, bestEnd := -1, 0, 0
		for i := range rules {
			loc := find(rules[i].Match, text, pos)
			if loc != nil && (best < 0 || loc[0] < bestStart) {
				best, bestStart, bestEnd = i, loc[0], loc[1]
			}
		}
		if best < 0 {
			break // Nothing else to highlight on this line
		}

		if rules[best].Multiline() {
			loc := find(rules[best].End, text, bestEnd)
			if loc == nil {
				appendMatch(best, bestStart, len(text))
				return dst, best
			}
			bestEnd = loc[1]
		}
		appendMatch(best, bestStart, bestEnd)
		pos = bestEnd
	}

	return dst, -1
}

// find returns the byte range of the first non-empty match of re in text at
// or after pos. A leading word boundary in re is checked against the byte
// before pos, which slicing text would otherwise hide.
func find(re *regexp.Regexp, text []byte, pos int) []int {
	leadingBoundary := strings.HasPrefix(re.String(), `\b`)
	for pos <= len(text) {
		loc := re.FindIndex(text[pos:])
		if loc == nil {
			return nil
		}
		start, end := loc[0]+pos, loc[1]+pos
		falseBoundary := leadingBoundary && start == pos && pos > 0 &&
			isWordByte(text[pos-1]) && pos < len(text) && isWordByte(text[pos])
		if end > start && !falseBoundary {
			return []int{start, end}
		}
		if start >= len(text) {
			return nil
		}
		_, size := utf8.DecodeRune(text[start:])
		pos = start + size
	}
	return nil
}

func isWordByte(b byte) bool {
	return b == '_' || '0' <= b && b <= '9' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// Apply invalidates the lines touched by e. When lines were added or removed,
// every line from the first change down is invalidated, because cached
// results are indexed by line.
func (h *Highlighter) Apply(e Edit) {
	if !e.Changed {
		return
	}
	h.resize()
	if e.LinesDelta != 0 {
		h.InvalidateLines(e.FirstLine, len(h.lines)-1)
		return
	}
	h.InvalidateLines(e.FirstLine, e.LastLine)
}
