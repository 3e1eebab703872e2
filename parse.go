package nestedtext

import "strings"

// DuplicateKeyPolicy controls what [ParseWithOptions] does with a key that
// repeats within one object block. The policy is enforced as each entry is
// inserted.
type DuplicateKeyPolicy int8

const (
	// UseFirst keeps the first entry and ignores later ones.
	UseFirst DuplicateKeyPolicy = iota
	// UseLast overwrites the first entry's value in place.
	UseLast
	// Reject fails the parse with [ErrDuplicateKey].
	Reject
)

// Options configures [ParseWithOptions].
type Options struct {
	// DuplicateKeys selects the policy for repeated object keys at the
	// same nesting level. The zero value is [UseFirst].
	DuplicateKeys DuplicateKeyPolicy

	// CopyStrings detaches scalar payloads and keys from the parsed
	// document text. When false, single-line scalars and keys are
	// substrings sharing one internal copy of the input, which keeps that
	// whole copy reachable for as long as any part of the tree is. Set it
	// when the tree is small and long-lived but the document is large.
	CopyStrings bool
}

// Parse reads a NestedText document into a [Value] tree using the default
// options. An input with no structurally meaningful line is valid and
// yields the empty string scalar.
func Parse(data []byte) (Value, error) {
	return ParseWithOptions(data, Options{})
}

// ParseWithOptions is [Parse] with explicit [Options]. On failure it
// returns a [*ParseError]; there is no partial result.
func ParseWithOptions(data []byte, opts Options) (Value, error) {
	p := &parser{
		opts:   opts,
		cursor: newLineCursor(scanLines(string(data))),
	}
	if p.cursor.peek() == nil {
		return String(""), nil
	}
	root, err := p.readValue()
	if err != nil {
		return nil, err
	}
	// readValue stops at the first line shallower than the block it was
	// started on, so a leftover line means the document began deeper than
	// its true minimum depth.
	if l := p.cursor.peek(); l != nil {
		return nil, parseErr(l, ErrInvalidIndentation, "line is less indented than the document root")
	}
	return root, nil
}

type parser struct {
	opts   Options
	cursor *lineCursor
}

func (p *parser) str(s string) string {
	if p.opts.CopyStrings {
		return strings.Clone(s)
	}
	return s
}

// readValue materializes one value from the block starting at the cursor.
// It dispatches purely on the next line's kind; blank and comment lines
// can't appear here because the cursor filters them.
func (p *parser) readValue() (Value, error) {
	switch l := p.cursor.peek(); l.kind {
	case lineString:
		return p.readString()
	case lineList:
		return p.readList()
	case lineObject:
		return p.readObject()
	default:
		return nil, parseErr(l, ErrUnrecognizedLine, "")
	}
}

// readString consumes a run of string lines at one depth and joins their
// payloads with newlines. String blocks never nest: a deeper line of any
// kind inside the block is an indentation error.
func (p *parser) readString() (Value, error) {
	depth := p.cursor.peekDepth()
	var parts []string
	for {
		l := p.cursor.peek()
		if l == nil || l.depth < depth {
			break
		}
		if l.depth > depth {
			return nil, parseErr(l, ErrInvalidIndentation, "string blocks do not nest")
		}
		if l.kind != lineString {
			return nil, parseErr(l, ErrInvalidItem, "expected a string line")
		}
		parts = append(parts, l.value)
		p.cursor.next()
	}
	if len(parts) == 1 {
		return String(p.str(parts[0])), nil
	}
	return String(strings.Join(parts, "\n")), nil
}

func (p *parser) readList() (Value, error) {
	depth := p.cursor.peekDepth()
	list := List{}
	for {
		l := p.cursor.peek()
		if l == nil || l.depth < depth {
			break
		}
		if l.depth > depth {
			return nil, parseErr(l, ErrInvalidIndentation, "expected a list item at the block's depth")
		}
		if l.kind != lineList {
			return nil, parseErr(l, ErrInvalidItem, "expected a list item")
		}
		p.cursor.next()
		item, err := p.readEntryValue(l, depth)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, nil
}

func (p *parser) readObject() (Value, error) {
	depth := p.cursor.peekDepth()
	obj := Object{}
	at := map[string]int{}
	for {
		l := p.cursor.peek()
		if l == nil || l.depth < depth {
			break
		}
		if l.depth > depth {
			return nil, parseErr(l, ErrInvalidIndentation, "expected a key at the block's depth")
		}
		if l.kind != lineObject {
			return nil, parseErr(l, ErrInvalidItem, "expected a key")
		}
		p.cursor.next()
		value, err := p.readEntryValue(l, depth)
		if err != nil {
			return nil, err
		}
		if i, seen := at[l.key]; seen {
			// the value's block is already consumed either way
			switch p.opts.DuplicateKeys {
			case UseFirst:
			case UseLast:
				obj[i].Value = value
			case Reject:
				return nil, parseErr(l, ErrDuplicateKey, l.key)
			}
			continue
		}
		at[l.key] = len(obj)
		obj = append(obj, Member{Key: p.str(l.key), Value: value})
	}
	return obj, nil
}

// readEntryValue resolves the value introduced by a list or object line:
// the inline scalar if one was present, the nested block if the next line
// is deeper, and otherwise the explicitly empty scalar.
func (p *parser) readEntryValue(l *line, depth int) (Value, error) {
	if l.hasValue {
		return String(p.str(l.value)), nil
	}
	if next := p.cursor.peek(); next != nil && next.depth > depth {
		return p.readValue()
	}
	return String(""), nil
}
