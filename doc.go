// Package nestedtext implements [NestedText] parsing and serializing.
//
// NestedText is a human-editable, line-oriented data format that encodes a
// tree of strings, lists, and key/value objects. Nesting is expressed with
// indentation alone; there are no inline delimiters and no quoting. Every
// leaf is a string: the format never guesses at numbers or booleans, so any
// typing is left to whoever consumes the document.
//
//	# a basic NestedText document
//	name: Aiko Tanaka
//	phones:
//	  - 555-1234
//	  - 555-5678
//	bio:
//	  > Joined in 2019.
//	  > Speaks Japanese and English.
//
// [Parse] reads a document into a [Value] tree of [String], [List], and
// [Object] nodes, preserving list and member order. [Stringify] is its
// inverse: parsing the text it produces yields an equal tree, although
// comments and blank lines are not preserved. [ToJSON] and [FromJSON]
// bridge the tree to JSON; scalars cross as JSON strings verbatim, in both
// directions.
//
// Like the builtin json package, the package can also convert directly
// between Go types and NestedText documents:
//
//	type Person struct {
//	  Name   string   `nt:"name"`
//	  Phones []string `nt:"phones"`
//	  Bio    string   `nt:"bio"`
//	}
//
//	person := Person{}
//	nestedtext.Unmarshal(data, &person)
//
// If a type implements [encoding.TextMarshaler] and
// [encoding.TextUnmarshaler] those are used to convert between a scalar and
// the type; otherwise scalars are decoded with the [strconv] package.
//
// Indentation is measured in leading space and tab characters, each
// counting as one column with no tab expansion. Mixing tabs and spaces in
// a document's indentation is therefore fragile and best avoided; the
// serializer only ever emits spaces.
//
// [NestedText]: https://nestedtext.org
package nestedtext
