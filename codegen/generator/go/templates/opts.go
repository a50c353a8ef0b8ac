package templates

import (
	"encoding/json"
	"fmt"
	"strings"

	. "github.com/dave/jennifer/jen" //nolint:stylecheck

	"github.com/dagger/dagger-go-sdk/codegen/introspection"
)

// optionsBuilder renders a builder for the options struct of f whose
// constructor starts from the defaults declared by the schema.
func (funcs goTemplateFuncs) optionsBuilder(f introspection.Field) (string, error) {
	optsName := fieldOptionsStructName(f)
	builderName := optsName + "Builder"

	defaults := Dict{}
	for _, arg := range f.Args.Optionals() {
		value, err := funcs.defaultValue(arg)
		if err != nil {
			funcs.logger.Warn("ignoring argument default",
				"type", f.ParentObject.Name, "field", f.Name, "arg", arg.Name, "error", err)
			continue
		}
		if value != nil && !defaultsToTrue(arg) {
			defaults[Id(formatName(arg.Name))] = value
		}
	}

	code := Commentf("%s builds %s starting from the schema defaults.", builderName, optsName).Line()
	code.Type().Id(builderName).Struct(
		Id("opts").Id(optsName),
	).Line().Line()

	code.Commentf("New%s returns a builder holding the schema defaults.", builderName).Line()
	code.Func().Id("New" + builderName).Params().Op("*").Id(builderName).Block(
		Return(Op("&").Id(builderName).Values(Dict{
			Id("opts"): Id(optsName).Values(defaults),
		})),
	).Line().Line()

	for _, arg := range f.Args.Optionals() {
		typ, err := funcs.FormatInputType(arg.TypeRef)
		if err != nil {
			return "", fmt.Errorf("argument %s: %w", arg.Name, err)
		}
		field := formatName(arg.Name)
		setter := field
		if setter == "Build" {
			setter += "_"
		}
		param := formatArgName(arg.Name)

		code.Commentf("%s sets the %q option.", setter, arg.Name).Line()
		if defaultsToTrue(arg) {
			// false is the zero value and never reaches the engine
			code.Comment("The engine defaults it to true; passing false keeps that default.").Line()
		}
		code.Func().Params(Id("b").Op("*").Id(builderName)).Id(setter).Params(Id(param).Id(typ)).Op("*").Id(builderName).Block(
			Id("b").Dot("opts").Dot(field).Op("=").Id(param),
			Return(Id("b")),
		).Line().Line()
	}

	code.Comment("Build returns the accumulated options.").Line()
	code.Func().Params(Id("b").Op("*").Id(builderName)).Id("Build").Params().Id(optsName).Block(
		Return(Id("b").Dot("opts")),
	)

	return fmt.Sprintf("%#v", code), nil
}

// defaultValue converts the GraphQL literal default of an argument into Go
// code. Defaults which cannot be expressed as a constant are left out.
func (funcs goTemplateFuncs) defaultValue(arg introspection.InputValue) (Code, error) {
	if arg.DefaultValue == nil || arg.TypeRef == nil {
		return nil, nil
	}
	literal := *arg.DefaultValue
	if literal == "null" {
		return nil, nil
	}

	ref := arg.TypeRef.Unwrap()
	switch ref.Kind {
	case introspection.TypeKindEnum:
		if !isGraphQLName(literal) {
			return nil, fmt.Errorf("invalid enum literal %s", literal)
		}
		return Id(formatEnum(ref.Name, literal)), nil
	case introspection.TypeKindScalar:
	default:
		// lists and input objects keep their zero value
		return nil, nil
	}

	switch introspection.Scalar(ref.Name) {
	case introspection.ScalarInt:
		var v int64
		if err := json.Unmarshal([]byte(literal), &v); err != nil {
			return nil, err
		}
		if v == 0 {
			return nil, nil
		}
		return Lit(int(v)), nil
	case introspection.ScalarFloat:
		var v float64
		if err := json.Unmarshal([]byte(literal), &v); err != nil {
			return nil, err
		}
		if v == 0 {
			return nil, nil
		}
		return Lit(v), nil
	case introspection.ScalarBoolean:
		var v bool
		if err := json.Unmarshal([]byte(literal), &v); err != nil {
			return nil, err
		}
		if !v {
			return nil, nil
		}
		return Lit(v), nil
	default:
		var v string
		if err := json.Unmarshal([]byte(literal), &v); err != nil {
			return nil, err
		}
		if v == "" {
			return nil, nil
		}
		return Lit(v), nil
	}
}

// defaultsToTrue reports whether arg is a Boolean whose schema default is
// true. Such an option cannot be switched off through a zero-value options
// struct, so the builder does not seed it.
func defaultsToTrue(arg introspection.InputValue) bool {
	if arg.DefaultValue == nil || arg.TypeRef == nil {
		return false
	}
	ref := arg.TypeRef.Unwrap()
	return ref.Kind == introspection.TypeKindScalar &&
		introspection.Scalar(ref.Name) == introspection.ScalarBoolean &&
		strings.TrimSpace(*arg.DefaultValue) == "true"
}

func isGraphQLName(s string) bool {
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
