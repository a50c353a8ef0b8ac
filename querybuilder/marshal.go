package querybuilder

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// GraphQLMarshaller is implemented by generated objects that can be passed
// where their ID is expected.
type GraphQLMarshaller interface {
	// XXX_GraphQLType is an internal function. It returns the native GraphQL type name
	XXX_GraphQLType() string
	// XXX_GraphQLID is an internal function. It returns the underlying type ID
	XXX_GraphQLID(ctx context.Context) (string, error)
}

// Enum is implemented by generated enum types. Enum values are written as
// bare names instead of string literals.
type Enum interface {
	IsEnum()
}

var (
	gqlMarshaller = reflect.TypeOf((*GraphQLMarshaller)(nil)).Elem()
	enumType      = reflect.TypeOf((*Enum)(nil)).Elem()
)

// MarshalGQL renders v as a GraphQL input literal.
func MarshalGQL(ctx context.Context, v any) (string, error) {
	if v == nil {
		return "null", nil
	}
	return marshalValue(ctx, reflect.ValueOf(v))
}

func marshalValue(ctx context.Context, v reflect.Value) (string, error) {
	t := v.Type()

	if t.Implements(gqlMarshaller) {
		if t.Kind() == reflect.Pointer && v.IsNil() {
			return "null", nil
		}
		return marshalCustom(ctx, v.Interface().(GraphQLMarshaller))
	}
	if t.Implements(enumType) && t.Kind() == reflect.String {
		return marshalEnum(v.String())
	}

	switch t.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", &SerializeError{Reason: fmt.Sprintf("float %v has no literal form", f)}
		}
		return strconv.FormatFloat(f, 'g', -1, t.Bits()), nil
	case reflect.String:
		return quoteString(v.String())
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "null", nil
		}
		return marshalValue(ctx, v.Elem())
	case reflect.Slice, reflect.Array:
		if t.Kind() == reflect.Slice && v.IsNil() {
			return "null", nil
		}
		var b strings.Builder
		b.WriteRune('[')
		n := v.Len()
		for i := 0; i < n; i++ {
			m, err := marshalValue(ctx, v.Index(i))
			if err != nil {
				return "", err
			}
			if i > 0 {
				b.WriteRune(',')
			}
			b.WriteString(m)
		}
		b.WriteRune(']')
		return b.String(), nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return "", &SerializeError{Reason: fmt.Sprintf("map key of kind %s", t.Key().Kind())}
		}
		if v.IsNil() {
			return "null", nil
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteRune('{')
		for i, k := range keys {
			if !isName(k) {
				return "", &SerializeError{Reason: fmt.Sprintf("invalid object key %q", k)}
			}
			m, err := marshalValue(ctx, v.MapIndex(reflect.ValueOf(k).Convert(t.Key())))
			if err != nil {
				return "", err
			}
			if i > 0 {
				b.WriteRune(',')
			}
			b.WriteString(k)
			b.WriteRune(':')
			b.WriteString(m)
		}
		b.WriteRune('}')
		return b.String(), nil
	case reflect.Struct:
		var b strings.Builder
		b.WriteRune('{')
		written := 0
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				continue
			}
			if name == "" {
				name = f.Name
			}
			fv := v.Field(i)
			if strings.Contains(opts, "omitempty") && IsZeroValue(fv.Interface()) {
				continue
			}
			m, err := marshalValue(ctx, fv)
			if err != nil {
				return "", err
			}
			if written > 0 {
				b.WriteRune(',')
			}
			b.WriteString(name)
			b.WriteRune(':')
			b.WriteString(m)
			written++
		}
		b.WriteRune('}')
		return b.String(), nil
	default:
		return "", &SerializeError{Reason: fmt.Sprintf("unsupported argument of kind %s", t.Kind())}
	}
}

func marshalCustom(ctx context.Context, v GraphQLMarshaller) (string, error) {
	id, err := v.XXX_GraphQLID(ctx)
	if err != nil {
		return "", &SerializeError{Reason: fmt.Sprintf("resolve %s id", v.XXX_GraphQLType()), Err: err}
	}
	return quoteString(id)
}

func marshalEnum(value string) (string, error) {
	if !isName(value) {
		return "", &SerializeError{Reason: fmt.Sprintf("invalid enum value %q", value)}
	}
	return value, nil
}

// quoteString writes s as a GraphQL string literal.
func quoteString(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", &SerializeError{Reason: "string is not valid UTF-8"}
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String(), nil
}

// isName reports whether s is a valid GraphQL name: /[_A-Za-z][_0-9A-Za-z]*/.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// IsZeroValue reports whether value would be left out of an optional
// argument list: nil, empty, or the zero value of its type.
func IsZeroValue(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

// isNil reports whether v is an untyped nil or a nil pointer, interface, map
// or slice.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
