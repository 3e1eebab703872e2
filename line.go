package nestedtext

import (
	"iter"
	"regexp"
	"strings"
)

type lineKind int8

const (
	lineBlank lineKind = iota
	lineComment
	lineString
	lineList
	lineObject
	lineUnrecognized
)

func (k lineKind) String() string {
	switch k {
	case lineBlank:
		return "Blank"
	case lineComment:
		return "Comment"
	case lineString:
		return "StringLine"
	case lineList:
		return "ListLine"
	case lineObject:
		return "ObjectLine"
	case lineUnrecognized:
		return "Unrecognized"
	default:
		panic("unknown lineKind")
	}
}

// line is one physical input line after classification. Lines are immutable
// once classified; the builder reports errors against their line numbers.
type line struct {
	lno   int // 1-based
	depth int // leading space/tab columns; meaningless for blank and comment lines
	kind  lineKind

	key      string // object lines only
	value    string // inline payload, verbatim
	hasValue bool   // distinguishes a bare marker from one with an inline value
}

var lineBreak = regexp.MustCompile("\r\n|\r|\n")

func physicalLines(input string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lno := 1
		for match := lineBreak.FindStringIndex(input); match != nil; match = lineBreak.FindStringIndex(input) {
			if !yield(lno, input[:match[0]]) {
				return
			}
			input = input[match[1]:]
			lno++
		}
		yield(lno, input)
	}
}

// scanLines splits input into physical lines and classifies each one.
// Scanning never fails: a line matching no form is classified as
// unrecognized and reported by the builder.
func scanLines(input string) []line {
	var out []line
	for lno, text := range physicalLines(input) {
		out = append(out, classifyLine(lno, text))
	}
	return out
}

// classifyLine strips the indentation prefix and decides the line's kind.
// Depth counts leading spaces and tabs one column each, with no tab
// expansion; see the package documentation for the tab caveat.
func classifyLine(lno int, text string) line {
	rest := strings.TrimLeft(text, " \t")
	l := line{lno: lno, depth: len(text) - len(rest)}

	switch {
	case rest == "":
		l.kind = lineBlank
	case rest[0] == '#':
		l.kind = lineComment
	case rest == ">" || strings.HasPrefix(rest, "> "):
		l.kind = lineString
		if len(rest) > 2 {
			// slicing rest keeps spaces beyond the marker verbatim
			l.value = rest[2:]
		}
		l.hasValue = true
	case rest == "-" || strings.HasPrefix(rest, "- "):
		l.kind = lineList
		if len(rest) > 2 {
			l.value = rest[2:]
			l.hasValue = true
		}
	default:
		if key, value, hasValue, ok := splitKeyLine(rest); ok {
			l.kind = lineObject
			l.key = key
			l.value = value
			l.hasValue = hasValue
		} else {
			l.kind = lineUnrecognized
		}
	}
	return l
}

// splitKeyLine matches the `key: value` and `key:` forms. The key ends at
// the first unescaped colon that is followed by a space or the end of the
// line. Keys cannot contain whitespace: hitting a space or tab before such
// a colon means the line is not an object line.
func splitKeyLine(rest string) (key, value string, hasValue, ok bool) {
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case ' ', '\t':
			return "", "", false, false
		case '\\':
			i++ // the escaped character cannot end the key
		case ':':
			if i+1 == len(rest) {
				return rest[:i], "", false, true
			}
			if rest[i+1] == ' ' {
				if i+2 == len(rest) {
					return rest[:i], "", false, true
				}
				return rest[:i], rest[i+2:], true, true
			}
			// a colon glued to its value is part of the key
		}
	}
	return "", "", false, false
}
