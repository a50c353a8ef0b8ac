package introspection

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Response is the introspection query response
type Response struct {
	Schema *Schema `json:"__schema"`
}

// UnmarshalResponse decodes an introspection result. Both the bare
// `{"__schema": ...}` form and the `{"data": {"__schema": ...}}` envelope
// returned by a GraphQL server are accepted.
func UnmarshalResponse(dt []byte) (*Response, error) {
	var envelope struct {
		Data *Response `json:"data"`
		Response
	}
	if err := json.Unmarshal(dt, &envelope); err != nil {
		return nil, fmt.Errorf("decode introspection: %w", err)
	}
	resp := &envelope.Response
	if envelope.Data != nil {
		resp = envelope.Data
	}
	if resp.Schema == nil {
		return nil, fmt.Errorf("decode introspection: missing __schema")
	}
	return resp, nil
}

type Schema struct {
	QueryType struct {
		Name string `json:"name,omitempty"`
	} `json:"queryType,omitempty"`
	MutationType *struct {
		Name string `json:"name,omitempty"`
	} `json:"mutationType,omitempty"`
	SubscriptionType *struct {
		Name string `json:"name,omitempty"`
	} `json:"subscriptionType,omitempty"`

	Types Types `json:"types"`
}

// Query returns the root query type.
func (s *Schema) Query() *Type {
	return s.Types.Get(s.QueryType.Name)
}

// Mutation returns the root mutation type, or nil.
func (s *Schema) Mutation() *Type {
	if s.MutationType == nil {
		return nil
	}
	return s.Types.Get(s.MutationType.Name)
}

// Subscription returns the root subscription type, or nil.
func (s *Schema) Subscription() *Type {
	if s.SubscriptionType == nil {
		return nil
	}
	return s.Types.Get(s.SubscriptionType.Name)
}

// isRootMarker reports whether name is the mutation or subscription root.
func (s *Schema) isRootMarker(name string) bool {
	if s.MutationType != nil && s.MutationType.Name == name {
		return true
	}
	if s.SubscriptionType != nil && s.SubscriptionType.Name == name {
		return true
	}
	return false
}

type TypeKind string

const (
	TypeKindScalar      = TypeKind("SCALAR")
	TypeKindObject      = TypeKind("OBJECT")
	TypeKindInterface   = TypeKind("INTERFACE")
	TypeKindUnion       = TypeKind("UNION")
	TypeKindEnum        = TypeKind("ENUM")
	TypeKindInputObject = TypeKind("INPUT_OBJECT")
	TypeKindList        = TypeKind("LIST")
	TypeKindNonNull     = TypeKind("NON_NULL")
)

// Valid reports whether k is one of the eight kinds defined by GraphQL.
func (k TypeKind) Valid() bool {
	switch k {
	case TypeKindScalar, TypeKindObject, TypeKindInterface, TypeKindUnion,
		TypeKindEnum, TypeKindInputObject, TypeKindList, TypeKindNonNull:
		return true
	}
	return false
}

type Scalar string

const (
	ScalarInt     = Scalar("Int")
	ScalarFloat   = Scalar("Float")
	ScalarString  = Scalar("String")
	ScalarBoolean = Scalar("Boolean")
	ScalarID      = Scalar("ID")
)

type Type struct {
	Kind        TypeKind     `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Fields      []*Field     `json:"fields,omitempty"`
	InputFields []InputValue `json:"inputFields,omitempty"`
	EnumValues  []EnumValue  `json:"enumValues,omitempty"`

	Interfaces    Types `json:"interfaces,omitempty"`
	PossibleTypes Types `json:"possibleTypes,omitempty"`
}

// Field returns the named field of the type, or nil.
func (t *Type) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

type Types []*Type

func (t Types) Get(name string) *Type {
	for _, i := range t {
		if i.Name == name {
			return i
		}
	}
	return nil
}

type Field struct {
	Name              string      `json:"name"`
	Description       string      `json:"description"`
	TypeRef           *TypeRef    `json:"type"`
	Args              InputValues `json:"args"`
	IsDeprecated      bool        `json:"isDeprecated"`
	DeprecationReason string      `json:"deprecationReason"`

	ParentObject *Type `json:"-"`
}

type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   string   `json:"name,omitempty"`
	OfType *TypeRef `json:"ofType,omitempty"`
}

func (r TypeRef) IsOptional() bool {
	return r.Kind != TypeKindNonNull
}

// Unwrap strips an outer NON_NULL.
func (r TypeRef) Unwrap() TypeRef {
	if r.Kind == TypeKindNonNull && r.OfType != nil {
		return *r.OfType
	}
	return r
}

// Inner strips every NON_NULL and LIST wrapper and returns the named type.
func (r TypeRef) Inner() TypeRef {
	ref := r
	for (ref.Kind == TypeKindNonNull || ref.Kind == TypeKindList) && ref.OfType != nil {
		ref = *ref.OfType
	}
	return ref
}

// ListDepth counts the LIST wrappers around the named type.
func (r TypeRef) ListDepth() int {
	depth := 0
	for ref := &r; ref != nil; ref = ref.OfType {
		if ref.Kind == TypeKindList {
			depth++
		}
	}
	return depth
}

func (r TypeRef) IsScalar() bool {
	ref := r.Unwrap()
	return ref.Kind == TypeKindScalar || ref.Kind == TypeKindEnum
}

func (r TypeRef) IsObject() bool {
	return r.Unwrap().Kind == TypeKindObject
}

func (r TypeRef) IsList() bool {
	return r.Unwrap().Kind == TypeKindList
}

// IsListOfScalar reports whether the ref is a (possibly nested) list of
// scalars or enums.
func (r TypeRef) IsListOfScalar() bool {
	if !r.IsList() {
		return false
	}
	inner := r.Inner()
	return inner.Kind == TypeKindScalar || inner.Kind == TypeKindEnum
}

// IsListOfObject reports whether the ref is a single-level list of objects.
func (r TypeRef) IsListOfObject() bool {
	return r.IsList() && r.ListDepth() == 1 && r.Inner().Kind == TypeKindObject
}

// String renders the ref in SDL notation, e.g. `[String!]!`.
func (r TypeRef) String() string {
	switch r.Kind {
	case TypeKindNonNull:
		if r.OfType == nil {
			return "!"
		}
		return r.OfType.String() + "!"
	case TypeKindList:
		if r.OfType == nil {
			return "[]"
		}
		return "[" + r.OfType.String() + "]"
	default:
		return r.Name
	}
}

type InputValues []InputValue

func (i InputValues) HasOptionals() bool {
	for _, v := range i {
		if v.IsOptional() {
			return true
		}
	}
	return false
}

// Required returns the non-optional values, in schema order.
func (i InputValues) Required() InputValues {
	var out InputValues
	for _, v := range i {
		if !v.IsOptional() {
			out = append(out, v)
		}
	}
	return out
}

// Optionals returns the optional values, in schema order.
func (i InputValues) Optionals() InputValues {
	var out InputValues
	for _, v := range i {
		if v.IsOptional() {
			out = append(out, v)
		}
	}
	return out
}

type InputValue struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	DefaultValue *string  `json:"defaultValue"`
	TypeRef      *TypeRef `json:"type"`
}

func (v InputValue) IsOptional() bool {
	return v.DefaultValue != nil || (v.TypeRef != nil && v.TypeRef.IsOptional())
}

type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason"`
}

// IsInternal reports whether name is reserved for introspection.
func IsInternal(name string) bool {
	return strings.HasPrefix(name, "__")
}
