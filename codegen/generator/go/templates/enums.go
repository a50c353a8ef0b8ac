package templates

import (
	"fmt"
	"sort"
	"strings"

	. "github.com/dave/jennifer/jen" //nolint:stylecheck
	"github.com/iancoleman/strcase"

	"github.com/dagger/dagger-go-sdk/codegen/introspection"
)

// formatEnum returns the Go constant name of an enum value.
// Example: `CacheSharingMode`, `LOCKED` -> `CacheSharingModeLocked`
func formatEnum(typeName, value string) string {
	return formatName(typeName) + strcase.ToCamel(strings.ToLower(value))
}

// sortEnumFields orders enum values by their wire name.
func sortEnumFields(s []introspection.EnumValue) []introspection.EnumValue {
	sorted := make([]introspection.EnumValue, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// enum renders a GraphQL enum as a string type with one constant per value.
func (funcs goTemplateFuncs) enum(t *introspection.Type) (string, error) {
	name := formatName(t.Name)
	values := sortEnumFields(t.EnumValues)
	if len(values) == 0 {
		return "", fmt.Errorf("enum %s has no values", t.Name)
	}

	code := docComment(Null(), t.Description)
	code.Type().Id(name).String().Line().Line()

	code.Func().Params(Id(name)).Id("IsEnum").Params().Block().Line().Line()

	defs := make([]Code, 0, len(values))
	cases := make([]Code, 0, len(values))
	seen := map[string]string{}
	for _, v := range values {
		constName := formatEnum(t.Name, v.Name)
		if other, ok := seen[constName]; ok {
			return "", fmt.Errorf("enum %s: values %s and %s both map to %s", t.Name, other, v.Name, constName)
		}
		seen[constName] = v.Name

		doc := strings.TrimSpace(v.Description)
		if v.IsDeprecated {
			if doc != "" {
				doc += "\n\n"
			}
			doc += "Deprecated: " + formatDeprecation(v.DeprecationReason)
		}
		defs = append(defs, docComment(Null(), doc).Id(constName).Id(name).Op("=").Lit(v.Name))
		cases = append(cases, Lit(v.Name))
	}
	code.Const().Defs(defs...).Line().Line()

	code.Comment(fmt.Sprintf("UnmarshalJSON rejects values which are not part of %s.", name)).Line()
	code.Func().Params(Id("v").Op("*").Id(name)).Id("UnmarshalJSON").Params(Id("dt").Index().Byte()).Error().Block(
		Var().Id("s").String(),
		If(
			Err().Op(":=").Qual("encoding/json", "Unmarshal").Call(Id("dt"), Op("&").Id("s")),
			Err().Op("!=").Nil(),
		).Block(Return(Err())),
		Switch(Id("s")).Block(
			Case(cases...).Block(
				Op("*").Id("v").Op("=").Id(name).Call(Id("s")),
			),
			Default().Block(
				Return(Qual("fmt", "Errorf").Call(Lit("invalid value %q for enum "+name), Id("s"))),
			),
		),
		Return(Nil()),
	)

	return fmt.Sprintf("%#v", code), nil
}

// docComment appends doc as a block of line comments.
func docComment(s *Statement, doc string) *Statement {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return s
	}
	for _, line := range strings.Split(doc, "\n") {
		s.Comment(strings.TrimRight(line, " \t")).Line()
	}
	return s
}
