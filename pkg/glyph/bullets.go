package glyph

import "fmt"

type Glyph struct {
	Key       string
	Symbol    string
	Meaning   string
	Signifier bool
}

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	strikeCode = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 10)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "task",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "task completed",
	}, Glyph{
		Key:     "-",
		Symbol:  "⁃",
		Meaning: "note",
	}, Glyph{
		Key:     "~",
		Symbol:  "⦵",
		Meaning: "won't do",
	}, Glyph{
		Key:     "t",
		Symbol:  "✕",
		Meaning: "in trash",
	}, Glyph{
		Key:     "o",
		Symbol:  "○",
		Meaning: "subtask",
	}, Glyph{
		Key:       "!",
		Symbol:    "!",
		Meaning:   "high priority",
		Signifier: true,
	}, Glyph{
		Key:       "*",
		Symbol:    "✷",
		Meaning:   "medium priority",
		Signifier: true,
	}, Glyph{
		Key:       ".",
		Symbol:    "·",
		Meaning:   "low priority",
		Signifier: true,
	}, Glyph{
		Key:       " ",
		Symbol:    " ",
		Meaning:   "none",
		Signifier: true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Bullet int
type Signifier int

const (
	Task Bullet = iota
	Completed
	Note
	WontDo
	Trash
	Subtask
	High Signifier = iota
	Medium
	Low
	None
)

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

func (s Signifier) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Signifier) String() string {
	return s.Glyph().String()
}

// ForPriority maps a numeric priority (0-3) to its signifier glyph.
func ForPriority(p int) Signifier {
	switch p {
	case 3:
		return High
	case 2:
		return Medium
	case 1:
		return Low
	default:
		return None
	}
}
