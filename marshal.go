package nestedtext

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Marshal converts a Go value to a NestedText document.
//
// Strings, numbers, booleans, and types implementing
// [encoding.TextMarshaler] become scalars; NestedText carries them all as
// text and leaves typing to whoever reads the document back. Slices and
// arrays become lists, except []byte which is base64 encoded. Maps and
// structs become objects; map entries are sorted by key so the output is
// deterministic. Nil pointers and interfaces become the empty scalar.
//
// It returns an error if the value cannot be represented, for example a
// channel, a func, or a map key containing whitespace.
func Marshal(v any) ([]byte, error) {
	value, err := marshalValue(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return []byte(Stringify(value, 2)), nil
}

func marshalValue(val reflect.Value) (Value, error) {
	if !val.IsValid() {
		return String(""), nil
	}

	if m, ok := val.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return nil, err
		}
		return String(text), nil
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return String(""), nil
		}
		return marshalValue(val.Elem())
	case reflect.String:
		return String(val.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128, reflect.Bool:
		return String(fmt.Sprint(val.Interface())), nil
	case reflect.Slice, reflect.Array:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return String(base64.RawStdEncoding.EncodeToString(byteSlice(val))), nil
		}
		list := make(List, 0, val.Len())
		for i := range val.Len() {
			item, err := marshalValue(val.Index(i))
			if err != nil {
				return nil, err
			}
			list = append(list, item)
		}
		return list, nil
	case reflect.Map:
		obj := make(Object, 0, val.Len())
		for _, key := range val.MapKeys() {
			k, err := marshalKey(key)
			if err != nil {
				return nil, err
			}
			v, err := marshalValue(val.MapIndex(key))
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: k, Value: v})
		}
		slices.SortFunc(obj, func(a, b Member) int {
			return strings.Compare(a.Key, b.Key)
		})
		return obj, nil
	case reflect.Struct:
		obj := Object{}
		t := val.Type()
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			tag, ok := field.Tag.Lookup("nt")
			if !ok {
				tag, _ = field.Tag.Lookup("json")
			}
			if tag == "-" {
				continue
			}
			name, options, _ := strings.Cut(tag, ",")
			if name == "" {
				name = field.Name
			}
			fv := val.Field(i)
			if strings.Contains(options, "omitempty") && fv.IsZero() {
				continue
			}
			key, err := validKey(name)
			if err != nil {
				return nil, err
			}
			v, err := marshalValue(fv)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: key, Value: v})
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", val.Type())
	}
}

func byteSlice(val reflect.Value) []byte {
	if val.Kind() == reflect.Slice {
		return val.Bytes()
	}
	out := make([]byte, val.Len())
	for i := range out {
		out[i] = byte(val.Index(i).Uint())
	}
	return out
}

func marshalKey(val reflect.Value) (string, error) {
	if m, ok := val.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return validKey(string(text))
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !val.IsNil() {
			return marshalKey(val.Elem())
		}
	case reflect.String:
		return validKey(val.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return fmt.Sprint(val.Interface()), nil
	}
	return "", fmt.Errorf("unsupported map key type: %s", val.Type())
}

// validKey rejects keys the line syntax cannot carry back: whitespace
// anywhere in the key, or a leading comment marker.
func validKey(key string) (string, error) {
	if strings.ContainsAny(key, " \t\n\r") {
		return "", fmt.Errorf("key %q contains whitespace", key)
	}
	if strings.HasPrefix(key, "#") {
		return "", fmt.Errorf("key %q starts with a comment marker", key)
	}
	return key, nil
}

// Unmarshal updates the value v with the data from the NestedText
// document. v should be a non-nil pointer to a struct, slice, map,
// interface, or array. Unmarshal acts similarly to json.Unmarshal.
//
// For struct fields, Unmarshal first looks for the name in an `nt:"name"`
// tag, then in a `json:"name"` tag, and finally uses the snake_case
// version of the field name or the field name itself.
//
// When unmarshalling into an interface, objects become map[string]any,
// lists become []any, and scalars become string.
//
// Scalars are decoded with the [strconv] package, or with the target's
// [encoding.TextUnmarshaler] if it has one: the document itself carries no
// types, so the target decides how each scalar is read.
func Unmarshal(data []byte, v any) error {
	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("invalid target, must be a non-nil pointer")
	}
	tree, err := Parse(data)
	if err != nil {
		return err
	}
	return unmarshalValue(tree, target.Elem())
}

func unmarshalValue(tree Value, v reflect.Value) error {
	if !v.CanSet() {
		panic(fmt.Errorf("cannot set value of type: %v", v.Type()))
	}

	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		s, ok := tree.(String)
		if !ok {
			return fmt.Errorf("cannot unmarshal %v into %s", tree.Kind(), v.Type())
		}
		return tu.UnmarshalText([]byte(s))
	}

	switch v.Kind() {
	case reflect.Pointer:
		if s, ok := tree.(String); ok && s == "" {
			// the empty scalar is how nil marshals
			v.SetZero()
			return nil
		}
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return unmarshalValue(tree, v.Elem())
	case reflect.Interface:
		if v.NumMethod() == 0 {
			v.Set(reflect.ValueOf(goValue(tree)))
			return nil
		}
	case reflect.Struct:
		return unmarshalStruct(tree, v)
	case reflect.Map:
		return unmarshalMap(tree, v)
	case reflect.Slice:
		return unmarshalSlice(tree, v)
	case reflect.Array:
		return unmarshalArray(tree, v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.Bool,
		reflect.String:
		s, ok := tree.(String)
		if !ok {
			return fmt.Errorf("cannot unmarshal %v into %s", tree.Kind(), v.Type())
		}
		return setBasicValue(string(s), v)
	}

	return fmt.Errorf("unsupported type: %v", v.Type())
}

// goValue converts a tree to the generic representation used when
// unmarshalling into an untyped interface.
func goValue(tree Value) any {
	switch tree := tree.(type) {
	case String:
		return string(tree)
	case List:
		out := make([]any, len(tree))
		for i, item := range tree {
			out[i] = goValue(item)
		}
		return out
	case Object:
		out := make(map[string]any, len(tree))
		for _, m := range tree {
			out[m.Key] = goValue(m.Value)
		}
		return out
	default:
		return nil
	}
}

func unmarshalStruct(tree Value, v reflect.Value) error {
	if s, ok := tree.(String); ok && s == "" {
		return nil
	}
	obj, ok := tree.(Object)
	if !ok {
		return fmt.Errorf("cannot unmarshal %v into %s", tree.Kind(), v.Type())
	}

	t := v.Type()
	fieldMap := make(map[string]reflect.Value)
	for i := range t.NumField() {
		field := v.Field(i)
		fieldType := t.Field(i)
		if fieldType.PkgPath != "" {
			continue
		}

		if tag, ok := fieldType.Tag.Lookup("nt"); ok {
			if tag == "-" {
				continue
			}
			name, _, _ := strings.Cut(tag, ",")
			fieldMap[name] = field
			continue
		}

		if tag, ok := fieldType.Tag.Lookup("json"); ok {
			if tag == "-" {
				continue
			}
			name, _, _ := strings.Cut(tag, ",")
			fieldMap[name] = field
			continue
		}

		fieldMap[fieldType.Name] = field
		fieldMap[toSnakeCase(fieldType.Name)] = field
	}

	for _, m := range obj {
		field, ok := fieldMap[m.Key]
		if !ok {
			return fmt.Errorf("unknown field %s", m.Key)
		}
		if err := unmarshalValue(m.Value, field); err != nil {
			return err
		}
	}
	return nil
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		result.WriteRune(r)
	}
	return result.String()
}

func unmarshalMap(tree Value, v reflect.Value) error {
	if s, ok := tree.(String); ok && s == "" {
		return nil
	}
	obj, ok := tree.(Object)
	if !ok {
		return fmt.Errorf("cannot unmarshal %v into %s", tree.Kind(), v.Type())
	}

	keyType := v.Type().Key()
	valueType := v.Type().Elem()
	if v.IsNil() {
		v.Set(reflect.MakeMap(v.Type()))
	}
	for _, m := range obj {
		key := reflect.New(keyType).Elem()
		if err := setBasicValue(m.Key, key); err != nil {
			return fmt.Errorf("invalid key: %w", err)
		}
		value := reflect.New(valueType).Elem()
		if err := unmarshalValue(m.Value, value); err != nil {
			return err
		}
		v.SetMapIndex(key, value)
	}
	return nil
}

func unmarshalSlice(tree Value, v reflect.Value) error {
	if v.Type().Elem().Kind() == reflect.Uint8 {
		s, ok := tree.(String)
		if !ok {
			return fmt.Errorf("cannot unmarshal %v into %s", tree.Kind(), v.Type())
		}
		r := strings.NewReplacer(" ", "", "\t", "", "\n", "")
		output, err := base64.RawStdEncoding.DecodeString(r.Replace(string(s)))
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(output))
		return nil
	}

	if s, ok := tree.(String); ok && s == "" {
		return nil
	}
	list, ok := tree.(List)
	if !ok {
		return fmt.Errorf("cannot unmarshal %v into %s", tree.Kind(), v.Type())
	}
	for _, item := range list {
		elem := reflect.New(v.Type().Elem()).Elem()
		if err := unmarshalValue(item, elem); err != nil {
			return err
		}
		v.Set(reflect.Append(v, elem))
	}
	return nil
}

func unmarshalArray(tree Value, v reflect.Value) error {
	if s, ok := tree.(String); ok && s == "" {
		return nil
	}
	list, ok := tree.(List)
	if !ok {
		return fmt.Errorf("cannot unmarshal %v into %s", tree.Kind(), v.Type())
	}
	if len(list) > v.Len() {
		return fmt.Errorf("too many elements, limit %d", v.Len())
	}
	for i, item := range list {
		elem := reflect.New(v.Type().Elem()).Elem()
		if err := unmarshalValue(item, elem); err != nil {
			return err
		}
		v.Index(i).Set(elem)
	}
	return nil
}

func setBasicValue(s string, v reflect.Value) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		if v.OverflowInt(i) {
			return fmt.Errorf("invalid %s: %v", v.Type(), i)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		if v.OverflowUint(u) {
			return fmt.Errorf("invalid %s: %v", v.Type(), u)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if v.OverflowFloat(f) {
			return fmt.Errorf("invalid %s: %v", v.Type(), f)
		}
		v.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return err
		}
		if v.OverflowComplex(c) {
			return fmt.Errorf("invalid %s: %v", v.Type(), c)
		}
		v.SetComplex(c)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
	return nil
}
