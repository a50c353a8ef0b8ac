package templates

import (
	"embed"
	"text/template"
)

//go:embed src/*.go.tmpl
var srcs embed.FS

func Header(funcs template.FuncMap) *template.Template {
	return parse("header.go.tmpl", funcs)
}

func Scalar(funcs template.FuncMap) *template.Template {
	return parse("scalar.go.tmpl", funcs)
}

func Input(funcs template.FuncMap) *template.Template {
	return parse("input.go.tmpl", funcs)
}

func Object(funcs template.FuncMap) *template.Template {
	return parse("object.go.tmpl", funcs, "method.go.tmpl")
}

func Enum(funcs template.FuncMap) *template.Template {
	return parse("enum.go.tmpl", funcs)
}

// parse loads the named template along with the partials it references.
// The sources are embedded, so a parse failure is a programming error.
func parse(name string, funcs template.FuncMap, partials ...string) *template.Template {
	patterns := []string{"src/" + name}
	for _, p := range partials {
		patterns = append(patterns, "src/"+p)
	}
	return template.Must(template.New(name).Funcs(funcs).ParseFS(srcs, patterns...))
}
