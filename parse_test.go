package nestedtext_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	nestedtext "github.com/nestedtext/nestedtext-go"
)

func parseToJSON(input string) (string, error) {
	tree, err := nestedtext.Parse([]byte(input))
	if err != nil {
		return "", err
	}
	out, err := nestedtext.ToJSON(tree)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// readExamples loads a testdata file of examples separated by === lines,
// each holding an input and its expectation separated by a --- line. The
// placeholders ␉ and ␊ stand for tab and carriage return.
func readExamples(t *testing.T, path string) [][2]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	content := strings.ReplaceAll(string(data), "␉", "\t")
	content = strings.ReplaceAll(content, "␊", "\r")

	var examples [][2]string
	for _, example := range strings.Split(content, "\n===\n") {
		parts := strings.SplitN(example, "\n---\n", 2)
		if len(parts) != 2 {
			t.Fatalf("invalid example format: %s", example)
		}
		examples = append(examples, [2]string{parts[0], strings.TrimSpace(parts[1])})
	}
	return examples
}

func TestExamples(t *testing.T) {
	for _, example := range readExamples(t, "testdata/examples.txt") {
		input, expected := example[0], example[1]
		output, err := parseToJSON(input)
		if err != nil {
			t.Fatalf("failed to parse: %v\ninput: %#v", err, input)
		}
		if output != expected {
			t.Fatalf("mismatch:\ninput: %#v\nexpected: %#v\ngot: %#v", input, expected, output)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, example := range readExamples(t, "testdata/errors.txt") {
		input, expected := example[0], example[1]
		output, err := parseToJSON(input)
		if err == nil {
			t.Errorf("expected to be unable to parse: %#v\ngot: %s", input, output)
			continue
		}
		if err.Error() != expected {
			t.Errorf("error mismatch:\ninput: %#v\nexpected: %#v\ngot: %#v", input, expected, err.Error())
		}
		var perr *nestedtext.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("expected a *ParseError, got %T", err)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	tree, err := nestedtext.Parse(nil)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if !tree.Equal(nestedtext.String("")) {
		t.Fatalf("expected the empty string scalar, got %#v", tree)
	}
}

func TestDuplicateKeyPolicies(t *testing.T) {
	input := []byte("foo: 1\nfoo: 2\nbar: 3\n")

	for _, test := range []struct {
		name   string
		policy nestedtext.DuplicateKeyPolicy
		want   nestedtext.Value
	}{
		{
			name:   "use first",
			policy: nestedtext.UseFirst,
			want: nestedtext.Object{
				{Key: "foo", Value: nestedtext.String("1")},
				{Key: "bar", Value: nestedtext.String("3")},
			},
		},
		{
			name:   "use last",
			policy: nestedtext.UseLast,
			want: nestedtext.Object{
				{Key: "foo", Value: nestedtext.String("2")},
				{Key: "bar", Value: nestedtext.String("3")},
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			tree, err := nestedtext.ParseWithOptions(input, nestedtext.Options{DuplicateKeys: test.policy})
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}
			if diff := cmp.Diff(test.want, tree); diff != "" {
				t.Fatalf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("reject", func(t *testing.T) {
		_, err := nestedtext.ParseWithOptions(input, nestedtext.Options{DuplicateKeys: nestedtext.Reject})
		if !errors.Is(err, nestedtext.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
		if err.Error() != "2: duplicate key: foo" {
			t.Fatalf("unexpected error text: %q", err.Error())
		}
	})
}

// The duplicate-key policy also applies when the repeated key carries a
// nested block: the block is consumed either way so later siblings still
// parse.
func TestDuplicateKeyWithNestedBlock(t *testing.T) {
	input := []byte("foo:\n  a: 1\nfoo:\n  b: 2\ntail: x\n")

	tree, err := nestedtext.ParseWithOptions(input, nestedtext.Options{DuplicateKeys: nestedtext.UseLast})
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	want := nestedtext.Object{
		{Key: "foo", Value: nestedtext.Object{{Key: "b", Value: nestedtext.String("2")}}},
		{Key: "tail", Value: nestedtext.String("x")},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyStrings(t *testing.T) {
	input := []byte("key: value\nstr:\n  > multi\n  > line\n")

	plain, err := nestedtext.Parse(input)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	copied, err := nestedtext.ParseWithOptions(input, nestedtext.Options{CopyStrings: true})
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if !plain.Equal(copied) {
		t.Fatalf("CopyStrings changed the result:\nplain: %#v\ncopied: %#v", plain, copied)
	}
}

func TestParseErrorLineNumbers(t *testing.T) {
	input := "a: 1\n\n# comment\nb:\n  - x\n  oops: 1\n"
	_, err := nestedtext.Parse([]byte(input))
	var perr *nestedtext.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *ParseError, got %v", err)
	}
	if perr.Lno != 6 {
		t.Fatalf("expected the error on line 6, got %d: %v", perr.Lno, err)
	}
	if !errors.Is(err, nestedtext.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}
