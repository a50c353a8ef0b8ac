package templates

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"text/template"

	"github.com/iancoleman/strcase"

	"github.com/dagger/dagger-go-sdk/codegen/generator"
	"github.com/dagger/dagger-go-sdk/codegen/introspection"
)

// Field kinds, deciding the shape of the generated method.
const (
	fieldKindObject      = "object"
	fieldKindLeaf        = "leaf"
	fieldKindListByID    = "listByID"
	fieldKindListByIndex = "listByIndex"
	fieldKindSkip        = "skip"
)

func GoTemplateFuncs(schema *introspection.Schema, logger *slog.Logger) template.FuncMap {
	if logger == nil {
		logger = slog.Default()
	}
	return goTemplateFuncs{
		CommonFunctions: generator.NewCommonFunctions(schema, &FormatTypeFunc{}),
		schema:          schema,
		logger:          logger,
		warned:          &sync.Map{},
	}.FuncMap()
}

type goTemplateFuncs struct {
	*generator.CommonFunctions
	schema *introspection.Schema
	logger *slog.Logger
	warned *sync.Map
}

// warnOnce logs a skipped field a single time per render.
func (funcs goTemplateFuncs) warnOnce(f introspection.Field, msg string) {
	key := f.ParentObject.Name + "." + f.Name
	if _, loaded := funcs.warned.LoadOrStore(key, struct{}{}); loaded {
		return
	}
	funcs.logger.Warn(msg, "type", f.ParentObject.Name, "field", f.Name, "returns", f.TypeRef.String())
}

func (funcs goTemplateFuncs) FuncMap() template.FuncMap {
	return template.FuncMap{
		"Comment":                funcs.comment,
		"FieldComment":           funcs.fieldComment,
		"FormatInputType":        funcs.FormatInputType,
		"FormatOutputType":       funcs.FormatOutputType,
		"FormatName":             formatName,
		"FormatArgName":          formatArgName,
		"FieldOptionsStructName": fieldOptionsStructName,
		"FieldFunction":          funcs.fieldFunction,
		"FieldKind":              funcs.fieldKind,
		"HasGraphQLID":           funcs.hasGraphQLID,
		"ListElemType":           funcs.listElemType,
		"IDLoaderName":           funcs.idLoaderName,
		"IDScalarOf":             funcs.idScalarOf,
		"CachedFields":           funcs.cachedFields,
		"CachedFieldName":        cachedFieldName,
		"IsCached":               funcs.isCached,
		"BulkFields":             funcs.bulkFields,
		"QuoteFields":            quoteFields,
		"OptionsBuilder":         funcs.optionsBuilder,
		"Enum":                   funcs.enum,
	}
}

// comments out a string
// Example: `hello\nworld` -> `// hello\n// world`
func (funcs goTemplateFuncs) comment(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			lines[i] = "//"
			continue
		}
		lines[i] = "// " + l
	}
	return strings.Join(lines, "\n")
}

// fieldComment renders the doc comment of a field method, including the
// deprecation notice.
func (funcs goTemplateFuncs) fieldComment(f introspection.Field) string {
	doc := f.Description
	if f.IsDeprecated {
		if doc != "" {
			doc += "\n\n"
		}
		doc += "Deprecated: " + formatDeprecation(f.DeprecationReason)
	}
	return funcs.comment(doc)
}

var backtickName = regexp.MustCompile("`[a-zA-Z0-9_]+`")

// formatDeprecation replaces backticked field names with their Go names.
// Example: "Replaced by `withExec`." -> "Replaced by WithExec."
func formatDeprecation(s string) string {
	if s == "" {
		return "This field is deprecated."
	}
	return backtickName.ReplaceAllStringFunc(s, func(name string) string {
		return formatName(strings.Trim(name, "`"))
	})
}

// formatName formats a GraphQL name (e.g. object, field, arg) into a Go equivalent
// Example: `fooId` -> `FooID`
func formatName(s string) string {
	if len(s) > 0 {
		s = strings.ToUpper(string(s[0])) + s[1:]
	}
	return lintName(s)
}

// reservedNames are identifiers which cannot be used as parameter names in
// generated methods.
var reservedNames = map[string]struct{}{
	// keywords
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},

	// predeclared identifiers and packages used by generated code
	"append": {}, "bool": {}, "error": {}, "false": {}, "float64": {},
	"int": {}, "len": {}, "make": {}, "nil": {}, "string": {}, "true": {},
	"context": {}, "fmt": {}, "graphql": {}, "json": {}, "querybuilder": {},

	// locals of generated methods
	"b": {}, "c": {}, "ctx": {}, "elem": {}, "err": {}, "i": {},
	"opts": {}, "out": {}, "q": {}, "r": {}, "response": {},
}

// formatArgName returns a Go parameter name for a GraphQL argument, adding
// an underscore suffix when it would clash.
func formatArgName(s string) string {
	if _, ok := reservedNames[s]; ok {
		return s + "_"
	}
	return s
}

// cachedFieldName is the wrapper struct field holding a prefetched value.
func cachedFieldName(f introspection.Field) string {
	name := strcase.ToLowerCamel(f.Name)
	if _, ok := reservedNames[name]; ok {
		return name + "_"
	}
	return name
}

// fieldOptionsStructName returns the options struct name for a given field
func fieldOptionsStructName(f introspection.Field) string {
	// Exception: `Query` option structs are not prefixed by `Query`.
	// This is just so that they're nicer to work with, e.g.
	// `ContainerOpts` rather than `QueryContainerOpts`
	// The structure name will not clash with others since everybody else
	// is prefixed by object name.
	if f.ParentObject == nil || f.ParentObject.Name == generator.QueryStructName {
		return formatName(f.Name) + "Opts"
	}
	return formatName(f.ParentObject.Name) + formatName(f.Name) + "Opts"
}

// fieldKind classifies a field by the shape of its return type.
func (funcs goTemplateFuncs) fieldKind(f introspection.Field) string {
	if f.TypeRef == nil {
		return fieldKindSkip
	}
	inner := f.TypeRef.Inner()
	switch inner.Kind {
	case introspection.TypeKindInterface, introspection.TypeKindUnion:
		funcs.warnOnce(f, "skipping field returning an abstract type")
		return fieldKindSkip
	}

	switch {
	case f.TypeRef.IsScalar(), f.TypeRef.IsListOfScalar():
		return fieldKindLeaf
	case f.TypeRef.IsObject():
		return fieldKindObject
	case f.TypeRef.IsListOfObject():
		if funcs.IDLoader(inner.Name) != nil {
			return fieldKindListByID
		}
		return fieldKindListByIndex
	case f.TypeRef.IsList() && inner.Kind == introspection.TypeKindObject:
		funcs.warnOnce(f, "skipping field returning nested lists of objects")
		return fieldKindSkip
	}
	// unknown kinds are reported by the type formatter
	return fieldKindLeaf
}

// fieldFunction converts a field into a function signature
// Example: `contents: String!` -> `func (r *File) Contents(ctx context.Context) (string, error)`
func (funcs goTemplateFuncs) fieldFunction(f introspection.Field) (string, error) {
	kind := funcs.fieldKind(f)

	signature := fmt.Sprintf(`func (r *%s) %s`,
		formatName(f.ParentObject.Name), formatName(f.Name))

	args := []string{}
	if kind != fieldKindObject {
		args = append(args, "ctx context.Context")
	}
	for _, arg := range f.Args {
		if arg.IsOptional() {
			continue
		}
		typ, err := funcs.FormatInputType(arg.TypeRef)
		if err != nil {
			return "", fmt.Errorf("argument %s: %w", arg.Name, err)
		}
		args = append(args, fmt.Sprintf("%s %s", formatArgName(arg.Name), typ))
	}
	// Options (e.g. DirectoryContentsOptions -> <Object><Field>Options)
	if f.Args.HasOptionals() {
		args = append(args, fmt.Sprintf("opts ...%s", fieldOptionsStructName(f)))
	}
	signature += "(" + strings.Join(args, ", ") + ")"

	retType, err := funcs.FormatOutputType(f.TypeRef)
	if err != nil {
		return "", err
	}
	if kind == fieldKindObject {
		signature += " *" + retType
	} else {
		signature += fmt.Sprintf(" (%s, error)", retType)
	}

	return signature, nil
}

// hasGraphQLID reports whether the object can be passed where its ID is
// expected.
func (funcs goTemplateFuncs) hasGraphQLID(t *introspection.Type) bool {
	if funcs.IDScalar(t.Name) == "" {
		return false
	}
	return !t.Field("id").TypeRef.IsOptional()
}

func (funcs goTemplateFuncs) listElemType(f introspection.Field) string {
	return formatName(f.TypeRef.Inner().Name)
}

func (funcs goTemplateFuncs) idLoaderName(f introspection.Field) string {
	loader := funcs.IDLoader(f.TypeRef.Inner().Name)
	if loader == nil {
		return ""
	}
	return loader.Name
}

func (funcs goTemplateFuncs) idScalarOf(f introspection.Field) string {
	return formatName(funcs.IDScalar(f.TypeRef.Inner().Name))
}

// isCacheable reports whether a field value can be prefetched in bulk when
// listing objects: a non-null scalar without arguments. Booleans report the
// outcome of an action (install, export) and are never prefetched.
func isCacheable(f *introspection.Field) bool {
	if f.TypeRef == nil || f.TypeRef.IsOptional() || len(f.Args) > 0 || f.IsDeprecated {
		return false
	}
	if f.TypeRef.Unwrap().Name == string(introspection.ScalarBoolean) {
		return false
	}
	return f.TypeRef.IsScalar()
}

// cachedFields returns the fields of t that are prefetched when t is listed
// by index. Objects that are never listed by index have none.
func (funcs goTemplateFuncs) cachedFields(t *introspection.Type) []*introspection.Field {
	if !funcs.listedByIndex(t.Name) {
		return nil
	}
	var fields []*introspection.Field
	for _, f := range t.Fields {
		if isCacheable(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

func (funcs goTemplateFuncs) isCached(f introspection.Field) bool {
	return isCacheable(&f) && f.ParentObject != nil && funcs.listedByIndex(f.ParentObject.Name)
}

// listedByIndex reports whether any field of the schema returns a list of
// the named object which cannot be addressed by ID.
func (funcs goTemplateFuncs) listedByIndex(name string) bool {
	if funcs.IDLoader(name) != nil {
		return false
	}
	for _, t := range funcs.schema.Types {
		if t.Kind != introspection.TypeKindObject || introspection.IsInternal(t.Name) {
			continue
		}
		for _, f := range t.Fields {
			if f.TypeRef != nil && f.TypeRef.IsListOfObject() && f.TypeRef.Inner().Name == name {
				return true
			}
		}
	}
	return false
}

// bulkFields returns the fields fetched for every element of a list field.
func (funcs goTemplateFuncs) bulkFields(f introspection.Field) []*introspection.Field {
	elem := funcs.schema.Types.Get(f.TypeRef.Inner().Name)
	if elem == nil {
		return nil
	}
	return funcs.cachedFields(elem)
}

// quoteFields renders field names as a Go argument list.
func quoteFields(fields []*introspection.Field) string {
	if len(fields) == 0 {
		return `"__typename"`
	}
	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		quoted = append(quoted, fmt.Sprintf("%q", f.Name))
	}
	return strings.Join(quoted, ", ")
}

// FormatTypeFunc maps GraphQL types onto Go types.
type FormatTypeFunc struct{}

var _ generator.FormatTypeFuncs = &FormatTypeFunc{}

func (f *FormatTypeFunc) FormatKindList(elem string) string {
	return "[]" + elem
}

func (f *FormatTypeFunc) FormatKindScalarString() string {
	return "string"
}

func (f *FormatTypeFunc) FormatKindScalarInt() string {
	return "int"
}

func (f *FormatTypeFunc) FormatKindScalarFloat() string {
	return "float64"
}

func (f *FormatTypeFunc) FormatKindScalarBoolean() string {
	return "bool"
}

func (f *FormatTypeFunc) FormatKindScalarDefault(refName string, input bool) string {
	return formatName(refName)
}

func (f *FormatTypeFunc) FormatKindObject(refName string, input bool) string {
	return formatName(refName)
}

func (f *FormatTypeFunc) FormatKindInputObject(refName string, input bool) string {
	return formatName(refName)
}

func (f *FormatTypeFunc) FormatKindEnum(refName string) string {
	return formatName(refName)
}

func (f *FormatTypeFunc) FormatOptional(representation string) string {
	return "*" + representation
}
