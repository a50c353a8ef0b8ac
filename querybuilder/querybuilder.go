// Package querybuilder accumulates GraphQL field selections lazily and turns
// them into a single query document when a leaf value is requested.
//
// A Selection is immutable: every method returns a new node pointing at its
// parent, so a partially built chain can be shared and extended from several
// places without interference.
package querybuilder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Khan/genqlient/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Query returns the root of a selection chain.
func Query() *Selection {
	return &Selection{}
}

type argument struct {
	name  string
	value any
}

type Selection struct {
	name   string
	alias  string
	args   []argument
	fields []string

	// index addresses one element of the list returned by prev. Index hops
	// emit nothing in the query document.
	index   int
	isIndex bool

	bind any

	prev *Selection
}

func (s *Selection) path() []*Selection {
	selections := []*Selection{}
	for sel := s; sel != nil && sel.prev != nil; sel = sel.prev {
		selections = append([]*Selection{sel}, selections...)
	}
	return selections
}

// SelectWithAlias selects field name, returned under alias.
func (s *Selection) SelectWithAlias(alias, name string) *Selection {
	return &Selection{
		name:  name,
		alias: alias,
		prev:  s,
	}
}

// Select appends a field to the chain.
func (s *Selection) Select(name string) *Selection {
	return s.SelectWithAlias("", name)
}

// Alias returns a copy of the selection answered under alias.
func (s *Selection) Alias(alias string) *Selection {
	sel := *s
	sel.alias = alias
	return &sel
}

// Arg returns a copy of the selection with an extra argument. Arguments are
// emitted in the order they were added; a nil value is left out of the query.
func (s *Selection) Arg(name string, value any) *Selection {
	sel := *s
	sel.args = make([]argument, len(s.args), len(s.args)+1)
	copy(sel.args, s.args)
	sel.args = append(sel.args, argument{name: name, value: value})
	return &sel
}

type enumLiteral string

func (enumLiteral) IsEnum() {}

// ArgEnum adds an argument whose value is written as a bare enum name.
func (s *Selection) ArgEnum(name string, value string) *Selection {
	return s.Arg(name, enumLiteral(value))
}

// SelectFields returns a copy of the selection requesting a block of
// sub-fields, e.g. `envVariables{name value}`.
func (s *Selection) SelectFields(fields ...string) *Selection {
	sel := *s
	sel.fields = append([]string{}, fields...)
	return &sel
}

// Index addresses element i of the list returned by the selection.
func (s *Selection) Index(i int) *Selection {
	return &Selection{
		index:   i,
		isIndex: true,
		prev:    s,
	}
}

// Bind returns a copy of the selection that decodes its result into v.
func (s *Selection) Bind(v any) *Selection {
	sel := *s
	sel.bind = v
	return &sel
}

func (s *Selection) resultName() string {
	if s.alias != "" {
		return s.alias
	}
	return s.name
}

// Build renders the chain as a compact query document, e.g.
// `query{container{from(address:"alpine"){stdout}}}`.
func (s *Selection) Build(ctx context.Context) (string, error) {
	fields := []string{"query"}

	path := s.path()
	var leaf *Selection
	for _, sel := range path {
		if sel.isIndex {
			continue
		}
		leaf = sel
		if sel.name == "" {
			return "", &BuildError{Reason: "empty field name"}
		}
		q := sel.name
		var args []string
		for _, arg := range sel.args {
			if isNil(arg.value) {
				continue
			}
			v, err := MarshalGQL(ctx, arg.value)
			if err != nil {
				var serr *SerializeError
				if errors.As(err, &serr) && serr.Arg == "" {
					serr.Arg = arg.name
				}
				return "", err
			}
			args = append(args, arg.name+":"+v)
		}
		if len(args) > 0 {
			q += "(" + strings.Join(args, ",") + ")"
		}
		if sel.alias != "" {
			q = sel.alias + ":" + q
		}
		fields = append(fields, q)
	}

	if leaf == nil {
		return "", &BuildError{Reason: "no field selected"}
	}

	q := strings.Join(fields, "{")
	if len(leaf.fields) > 0 {
		q += "{" + strings.Join(leaf.fields, " ") + "}"
	}
	q += strings.Repeat("}", len(fields)-1)
	return q, nil
}

// Unpack walks data along the selection path and decodes the addressed value
// into every bound target. A null anywhere along the path leaves the targets
// untouched; a field missing from the response is an error.
func (s *Selection) Unpack(data any) error {
	var walked []string
	for _, sel := range s.path() {
		if data == nil {
			return nil
		}

		if sel.isIndex {
			walked = append(walked, fmt.Sprintf("[%d]", sel.index))
			list, ok := data.([]any)
			if !ok {
				return &UnpackError{Kind: UnpackTooManyNested, Path: strings.Join(walked, ".")}
			}
			if sel.index < 0 || sel.index >= len(list) {
				return &UnpackError{
					Kind: UnpackDeserialize,
					Path: strings.Join(walked, "."),
					Err:  fmt.Errorf("index out of range with length %d", len(list)),
				}
			}
			data = list[sel.index]
		} else {
			walked = append(walked, sel.resultName())
			fields, ok := data.(map[string]any)
			if !ok {
				return &UnpackError{Kind: UnpackTooManyNested, Path: strings.Join(walked, ".")}
			}
			// an explicit null short-circuits, a missing key does not
			data, ok = fields[sel.resultName()]
			if !ok {
				return &UnpackError{Kind: UnpackTooManyNested, Path: strings.Join(walked, ".")}
			}
		}

		if sel.bind != nil {
			marshalled, err := json.Marshal(data)
			if err != nil {
				return &UnpackError{Kind: UnpackDeserialize, Path: strings.Join(walked, "."), Err: err}
			}
			if err := json.Unmarshal(marshalled, sel.bind); err != nil {
				return &UnpackError{Kind: UnpackDeserialize, Path: strings.Join(walked, "."), Err: err}
			}
		}
	}

	return nil
}

// Execute builds the query, sends it through c and unpacks the response into
// the bound values.
func (s *Selection) Execute(ctx context.Context, c graphql.Client) error {
	query, err := s.Build(ctx)
	if err != nil {
		return err
	}

	var response any
	err = c.MakeRequest(ctx,
		&graphql.Request{
			Query: query,
		},
		&graphql.Response{Data: &response},
	)
	if err != nil {
		return classify(query, err)
	}

	return s.Unpack(response)
}

func classify(query string, err error) error {
	var qerr *QueryError
	if errors.As(err, &qerr) {
		return err
	}
	var gqlErrs gqlerror.List
	if errors.As(err, &gqlErrs) {
		return &QueryError{Kind: QueryErrorResponse, Query: query, Errors: gqlErrs, Err: err}
	}
	// non-200 answers still carry the engine's errors unless the server failed
	var httpErr *graphql.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode < 500 && len(httpErr.Response.Errors) > 0 {
		return &QueryError{Kind: QueryErrorResponse, Query: query, Errors: httpErr.Response.Errors, Err: err}
	}
	return &QueryError{Kind: QueryErrorTransport, Query: query, Err: err}
}
