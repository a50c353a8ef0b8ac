package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dagger/dagger-go-sdk/codegen/introspection"
)

const (
	QueryStructName = "Query"
)

// ErrUnsupportedKind is returned when a type reference cannot be mapped to
// the target language.
var ErrUnsupportedKind = errors.New("unsupported type kind")

// FormatTypeFuncs is an interface to format any GraphQL type.
// Each generator has to implement this interface.
type FormatTypeFuncs interface {
	FormatKindList(elem string) string
	FormatKindScalarString() string
	FormatKindScalarInt() string
	FormatKindScalarFloat() string
	FormatKindScalarBoolean() string
	FormatKindScalarDefault(refName string, input bool) string
	FormatKindObject(refName string, input bool) string
	FormatKindInputObject(refName string, input bool) string
	FormatKindEnum(refName string) string
	// FormatOptional wraps a nullable scalar or enum in output position.
	FormatOptional(representation string) string
}

// CommonFunctions formatting function with global shared template functions.
type CommonFunctions struct {
	schema          *introspection.Schema
	formatTypeFuncs FormatTypeFuncs
}

func NewCommonFunctions(schema *introspection.Schema, formatTypeFuncs FormatTypeFuncs) *CommonFunctions {
	return &CommonFunctions{schema: schema, formatTypeFuncs: formatTypeFuncs}
}

// FormatInputType formats a GraphQL type into the SDK language input
//
// Example: `String` -> `string`, `Container` -> `ContainerID`
func (c *CommonFunctions) FormatInputType(r *introspection.TypeRef) (string, error) {
	return c.formatType(r, true)
}

// FormatOutputType formats a GraphQL type into the SDK language output
//
// Example: `String` -> `*string`, `String!` -> `string`
func (c *CommonFunctions) FormatOutputType(r *introspection.TypeRef) (string, error) {
	return c.formatType(r, false)
}

func (c *CommonFunctions) formatType(r *introspection.TypeRef, input bool) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: missing type reference", ErrUnsupportedKind)
	}
	if r.Kind == introspection.TypeKindNonNull {
		return c.formatRequired(r.OfType, input)
	}

	representation, err := c.formatRequired(r, input)
	if err != nil {
		return "", err
	}
	if input {
		// optionality of inputs is carried by the options record
		return representation, nil
	}
	switch r.Kind {
	case introspection.TypeKindScalar, introspection.TypeKindEnum:
		return c.formatTypeFuncs.FormatOptional(representation), nil
	}
	return representation, nil
}

func (c *CommonFunctions) formatRequired(r *introspection.TypeRef, input bool) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: missing type reference", ErrUnsupportedKind)
	}
	switch r.Kind {
	case introspection.TypeKindList:
		elem, err := c.formatType(r.OfType, input)
		if err != nil {
			return "", err
		}
		return c.formatTypeFuncs.FormatKindList(elem), nil
	case introspection.TypeKindScalar:
		switch introspection.Scalar(r.Name) {
		case introspection.ScalarString:
			return c.formatTypeFuncs.FormatKindScalarString(), nil
		case introspection.ScalarInt:
			return c.formatTypeFuncs.FormatKindScalarInt(), nil
		case introspection.ScalarFloat:
			return c.formatTypeFuncs.FormatKindScalarFloat(), nil
		case introspection.ScalarBoolean:
			return c.formatTypeFuncs.FormatKindScalarBoolean(), nil
		default:
			return c.formatTypeFuncs.FormatKindScalarDefault(r.Name, input), nil
		}
	case introspection.TypeKindObject:
		if input {
			if id := c.IDScalar(r.Name); id != "" {
				return c.formatTypeFuncs.FormatKindScalarDefault(id, input), nil
			}
		}
		return c.formatTypeFuncs.FormatKindObject(r.Name, input), nil
	case introspection.TypeKindInputObject:
		return c.formatTypeFuncs.FormatKindInputObject(r.Name, input), nil
	case introspection.TypeKindEnum:
		return c.formatTypeFuncs.FormatKindEnum(r.Name), nil
	case introspection.TypeKindNonNull:
		return "", fmt.Errorf("%w: nested NON_NULL", ErrUnsupportedKind)
	default:
		return "", fmt.Errorf("%w: %s %s", ErrUnsupportedKind, r.Kind, r.Name)
	}
}

// IDScalar returns the scalar returned by the `id` field of the named object
// when that scalar is an ID type, e.g. `ContainerID` for `Container`.
func (c *CommonFunctions) IDScalar(objectName string) string {
	if c.schema == nil {
		return ""
	}
	t := c.schema.Types.Get(objectName)
	if t == nil || t.Kind != introspection.TypeKindObject {
		return ""
	}
	f := t.Field("id")
	if f == nil || f.TypeRef == nil || len(f.Args.Required()) > 0 {
		return ""
	}
	ref := f.TypeRef.Unwrap()
	if ref.Kind != introspection.TypeKindScalar || !strings.HasSuffix(ref.Name, "ID") {
		return ""
	}
	return ref.Name
}

// IDLoader returns the root field loading the named object from its ID, e.g.
// `container(id: ContainerID)` for `Container`.
func (c *CommonFunctions) IDLoader(objectName string) *introspection.Field {
	id := c.IDScalar(objectName)
	if id == "" {
		return nil
	}
	query := c.schema.Query()
	if query == nil {
		return nil
	}
	for _, f := range query.Fields {
		if f.TypeRef == nil || f.TypeRef.Unwrap().Kind != introspection.TypeKindObject {
			continue
		}
		if f.TypeRef.Unwrap().Name != objectName {
			continue
		}
		if req := f.Args.Required(); len(req) > 1 || (len(req) == 1 && req[0].Name != "id") {
			continue
		}
		for _, arg := range f.Args {
			if arg.Name != "id" || arg.TypeRef == nil {
				continue
			}
			if arg.TypeRef.Unwrap().Kind == introspection.TypeKindScalar && arg.TypeRef.Unwrap().Name == id {
				return f
			}
		}
	}
	return nil
}
