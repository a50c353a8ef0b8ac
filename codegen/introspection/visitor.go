package introspection

import (
	"fmt"
	"sort"
)

// VisitFunc renders a single type.
type VisitFunc func(*Type) error

// VisitHandlers routes each visited type to the renderer for its kind. A nil
// handler skips the kind.
type VisitHandlers struct {
	Scalar VisitFunc
	Object VisitFunc
	Input  VisitFunc
	Enum   VisitFunc
}

// Visit walks the schema in a stable order: scalars, inputs, objects, then
// enums, each sorted by name.
func (s *Schema) Visit(handlers VisitHandlers) error {
	v := Visitor{schema: s}
	for _, t := range v.Run() {
		var fn VisitFunc
		switch t.Kind {
		case TypeKindScalar:
			fn = handlers.Scalar
		case TypeKindInputObject:
			fn = handlers.Input
		case TypeKindObject:
			fn = handlers.Object
		case TypeKindEnum:
			fn = handlers.Enum
		}
		if fn == nil {
			continue
		}
		if err := fn(t); err != nil {
			return fmt.Errorf("visit %s %s: %w", t.Kind, t.Name, err)
		}
	}
	return nil
}

type Visitor struct {
	schema *Schema
}

// BuiltinScalars are the GraphQL scalars mapped onto Go's primitive types.
var BuiltinScalars = map[string]struct{}{
	string(ScalarString):  {},
	string(ScalarFloat):   {},
	string(ScalarInt):     {},
	string(ScalarBoolean): {},
}

// Run returns the types to render, in visiting order.
func (v *Visitor) Run() []*Type {
	sequence := []struct {
		Kind   TypeKind
		Ignore map[string]struct{}
	}{
		{
			Kind:   TypeKindScalar,
			Ignore: BuiltinScalars,
		},
		{
			Kind: TypeKindInputObject,
		},
		{
			Kind: TypeKindObject,
		},
		{
			Kind: TypeKindEnum,
		},
	}

	var types []*Type
	for _, i := range sequence {
		types = append(types, v.visit(i.Kind, i.Ignore)...)
	}
	return types
}

func (v *Visitor) visit(kind TypeKind, ignore map[string]struct{}) []*Type {
	types := []*Type{}
	for _, t := range v.schema.Types {
		if t.Kind != kind {
			continue
		}
		if IsInternal(t.Name) {
			continue
		}
		if v.schema.isRootMarker(t.Name) {
			continue
		}
		if _, ok := ignore[t.Name]; ok {
			continue
		}
		types = append(types, t)
	}

	sort.SliceStable(types, func(i, j int) bool {
		return types[i].Name < types[j].Name
	})

	for _, t := range types {
		sort.SliceStable(t.Fields, func(i, j int) bool {
			return t.Fields[i].Name < t.Fields[j].Name
		})

		sort.SliceStable(t.InputFields, func(i, j int) bool {
			return t.InputFields[i].Name < t.InputFields[j].Name
		})

		sort.SliceStable(t.EnumValues, func(i, j int) bool {
			return t.EnumValues[i].Name < t.EnumValues[j].Name
		})
	}

	return types
}
