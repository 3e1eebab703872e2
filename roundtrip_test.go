package nestedtext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	nestedtext "github.com/nestedtext/nestedtext-go"
)

// Every tree built from valid input must survive a render/reparse cycle
// unchanged, whatever indent width the rendering used.
func TestRoundTrip(t *testing.T) {
	for _, example := range readExamples(t, "testdata/examples.txt") {
		tree, err := nestedtext.Parse([]byte(example[0]))
		if err != nil {
			t.Fatalf("failed to parse: %v\ninput: %#v", err, example[0])
		}
		for _, width := range []int{1, 2, 4, 8} {
			text := nestedtext.Stringify(tree, width)
			again, err := nestedtext.Parse([]byte(text))
			if err != nil {
				t.Fatalf("failed to reparse rendering: %v\nrendering: %#v", err, text)
			}
			if !tree.Equal(again) {
				t.Fatalf("round trip mismatch at width %d (-first +second):\n%s",
					width, cmp.Diff(tree, again))
			}
		}
	}
}

func TestRoundTripConstructedTrees(t *testing.T) {
	for _, test := range []struct {
		name string
		tree nestedtext.Value
	}{
		{"root scalar", nestedtext.String("plain text")},
		{"root empty scalar", nestedtext.String("")},
		{"scalar with trailing newline", nestedtext.String("ends with a break\n")},
		{"scalar of blank lines", nestedtext.String("\n\n")},
		{"leading and trailing spaces", nestedtext.List{
			nestedtext.String(" padded "),
			nestedtext.String("  "),
		}},
		{"marker lookalikes", nestedtext.List{
			nestedtext.String("- not a list"),
			nestedtext.String("> not a string"),
			nestedtext.String("# not a comment"),
			nestedtext.String("key: not an entry"),
		}},
		{"nested mixture", nestedtext.Object{
			{Key: "scalar", Value: nestedtext.String("x")},
			{Key: "multi", Value: nestedtext.String("a\nb")},
			{Key: "list", Value: nestedtext.List{
				nestedtext.Object{{Key: "inner", Value: nestedtext.String("")}},
				nestedtext.List{nestedtext.String("deep")},
			}},
		}},
		{"colons in keys", nestedtext.Object{
			{Key: "a:b", Value: nestedtext.String("v")},
			{Key: ":", Value: nestedtext.String("w")},
		}},
	} {
		t.Run(test.name, func(t *testing.T) {
			text := nestedtext.Stringify(test.tree, 2)
			again, err := nestedtext.Parse([]byte(text))
			if err != nil {
				t.Fatalf("failed to reparse rendering: %v\nrendering: %#v", err, text)
			}
			if !test.tree.Equal(again) {
				t.Fatalf("round trip mismatch (-first +second):\n%s", cmp.Diff(test.tree, again))
			}
		})
	}
}
