package nestedtext

import (
	"io"
	"strings"
)

// Stringify renders v as canonical NestedText, indenting each nesting
// level by width spaces. Widths below one are treated as two.
//
// For any tree produced by [Parse] from valid input, parsing the rendering
// yields an equal tree. Comments and blank lines are not part of the tree
// and so are not reproduced. Empty lists and objects render as nothing
// after their marker and read back as empty strings; Parse never produces
// them.
func Stringify(v Value, width int) string {
	if width < 1 {
		width = 2
	}
	var b strings.Builder
	writeValue(&b, v, "", strings.Repeat(" ", width))
	return b.String()
}

// Fprint writes the rendering of v to w.
func Fprint(w io.Writer, v Value, width int) error {
	_, err := io.WriteString(w, Stringify(v, width))
	return err
}

func writeValue(b *strings.Builder, v Value, indent, pad string) {
	switch v := v.(type) {
	case String:
		writeStringBlock(b, string(v), indent)
	case List:
		for _, item := range v {
			b.WriteString(indent)
			b.WriteString("-")
			writeEntryValue(b, item, indent+pad, pad)
		}
	case Object:
		for _, m := range v {
			b.WriteString(indent)
			b.WriteString(m.Key)
			b.WriteString(":")
			writeEntryValue(b, m.Value, indent+pad, pad)
		}
	default:
		panic("unknown Value variant")
	}
}

// writeEntryValue finishes a `-` or `key:` marker line. Single-line
// scalars go inline after one separating space; the empty scalar is the
// bare marker; everything else becomes an indented block.
func writeEntryValue(b *strings.Builder, v Value, childIndent, pad string) {
	if s, ok := v.(String); ok {
		if s == "" {
			b.WriteByte('\n')
			return
		}
		if !strings.ContainsAny(string(s), "\n\r") {
			b.WriteByte(' ')
			b.WriteString(string(s))
			b.WriteByte('\n')
			return
		}
	}
	b.WriteByte('\n')
	writeValue(b, v, childIndent, pad)
}

// writeStringBlock emits a scalar in `> ` form, one marker per line. A
// value ending in a newline gets one further bare `>` so the trailing
// terminator survives the round trip.
func writeStringBlock(b *strings.Builder, s, indent string) {
	for _, part := range lineBreak.Split(s, -1) {
		b.WriteString(indent)
		if part == "" {
			b.WriteString(">\n")
		} else {
			b.WriteString("> ")
			b.WriteString(part)
			b.WriteByte('\n')
		}
	}
}
