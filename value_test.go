package nestedtext_test

import (
	"testing"

	nestedtext "github.com/nestedtext/nestedtext-go"
)

func TestValueEqual(t *testing.T) {
	obj := nestedtext.Object{
		{Key: "a", Value: nestedtext.String("1")},
		{Key: "b", Value: nestedtext.List{nestedtext.String("x")}},
	}
	for _, test := range []struct {
		name  string
		a, b  nestedtext.Value
		equal bool
	}{
		{"same string", nestedtext.String("x"), nestedtext.String("x"), true},
		{"different string", nestedtext.String("x"), nestedtext.String("y"), false},
		{"string vs list", nestedtext.String("x"), nestedtext.List{nestedtext.String("x")}, false},
		{"same object", obj, nestedtext.Object{
			{Key: "a", Value: nestedtext.String("1")},
			{Key: "b", Value: nestedtext.List{nestedtext.String("x")}},
		}, true},
		{"member order matters", nestedtext.Object{
			{Key: "a", Value: nestedtext.String("1")},
			{Key: "b", Value: nestedtext.String("2")},
		}, nestedtext.Object{
			{Key: "b", Value: nestedtext.String("2")},
			{Key: "a", Value: nestedtext.String("1")},
		}, false},
		{"list length matters", nestedtext.List{nestedtext.String("x")}, nestedtext.List{}, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Equal(test.b); got != test.equal {
				t.Fatalf("Equal = %v, expected %v", got, test.equal)
			}
		})
	}
}

func TestObjectGet(t *testing.T) {
	obj := nestedtext.Object{
		{Key: "a", Value: nestedtext.String("1")},
		{Key: "a", Value: nestedtext.String("2")},
	}
	v, ok := obj.Get("a")
	if !ok || !v.Equal(nestedtext.String("1")) {
		t.Fatalf("expected the first member, got %v, %v", v, ok)
	}
	if _, ok := obj.Get("missing"); ok {
		t.Fatalf("expected a miss")
	}
}

func TestKindString(t *testing.T) {
	for kind, want := range map[nestedtext.Kind]string{
		nestedtext.KindString: "String",
		nestedtext.KindList:   "List",
		nestedtext.KindObject: "Object",
	} {
		if kind.String() != want {
			t.Errorf("expected %s, got %s", want, kind.String())
		}
	}
}
