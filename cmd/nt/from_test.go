package main

import (
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/nestedtext/nestedtext-go"
)

func TestFromDecoded(t *testing.T) {
	for _, test := range []struct {
		name string
		in   any
		want nestedtext.Value
	}{
		{
			name: "nil becomes the empty scalar",
			in:   nil,
			want: nestedtext.String(""),
		},
		{
			name: "plain maps are sorted",
			in:   map[string]any{"b": "2", "a": "1"},
			want: nestedtext.Object{
				{Key: "a", Value: nestedtext.String("1")},
				{Key: "b", Value: nestedtext.String("2")},
			},
		},
		{
			name: "yaml map slices keep source order",
			in: yaml.MapSlice{
				{Key: "z", Value: "1"},
				{Key: "a", Value: []any{"x", int64(2)}},
			},
			want: nestedtext.Object{
				{Key: "z", Value: nestedtext.String("1")},
				{Key: "a", Value: nestedtext.List{nestedtext.String("x"), nestedtext.String("2")}},
			},
		},
		{
			name: "toml arrays of tables",
			in:   []map[string]any{{"k": true}},
			want: nestedtext.List{nestedtext.Object{{Key: "k", Value: nestedtext.String("true")}}},
		},
		{
			name: "timestamps use RFC 3339",
			in:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			want: nestedtext.String("2024-03-01T12:00:00Z"),
		},
		{
			name: "numbers keep their printed form",
			in:   []any{3.14, int64(-7)},
			want: nestedtext.List{nestedtext.String("3.14"), nestedtext.String("-7")},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := fromDecoded(test.in)
			if err != nil {
				t.Fatalf("failed to convert: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Fatalf("unexpected tree (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDuplicatePolicy(t *testing.T) {
	for name, want := range map[string]nestedtext.DuplicateKeyPolicy{
		"first": nestedtext.UseFirst,
		"last":  nestedtext.UseLast,
		"error": nestedtext.Reject,
	} {
		got, err := duplicatePolicy(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Fatalf("%s: got %v, expected %v", name, got, want)
		}
	}
	if _, err := duplicatePolicy("nope"); err == nil {
		t.Fatalf("expected an error for an unknown policy")
	}
}
