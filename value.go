package nestedtext

// Kind identifies which variant a [Value] holds.
type Kind int8

// The three kinds of value in a NestedText document.
const (
	KindString Kind = iota
	KindList
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindObject:
		return "Object"
	default:
		panic("unknown Kind")
	}
}

func (k Kind) GoString() string {
	return k.String()
}

// Value is one node of a document tree: a scalar string, an ordered list,
// or an ordered key/value object. It is a closed sum; the concrete types
// are [String], [List] and [Object].
type Value interface {
	Kind() Kind

	// Equal reports structural equality: string-for-string, element order
	// and member order included.
	Equal(Value) bool
}

// String is a scalar value. It may contain embedded newlines when it was
// produced by a multi-line string block.
type String string

func (String) Kind() Kind { return KindString }

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

// List is an ordered sequence of values. Document order is preserved and
// duplicates are allowed.
type List []Value

func (List) Kind() Kind { return KindList }

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Member is one key/value entry of an [Object].
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered mapping from string keys to values. Insertion order
// is preserved; key uniqueness is governed by the [DuplicateKeyPolicy] in
// effect when the document was parsed.
type Object []Member

func (Object) Kind() Kind { return KindObject }

func (o Object) Equal(other Value) bool {
	q, ok := other.(Object)
	if !ok || len(o) != len(q) {
		return false
	}
	for i := range o {
		if o[i].Key != q[i].Key || !o[i].Value.Equal(q[i].Value) {
			return false
		}
	}
	return true
}

// Get returns the value for key, and whether the key was present.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}
