package introspection

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Schema {
	t.Helper()
	dt, err := os.ReadFile("testdata/introspection.json")
	require.NoError(t, err)
	resp, err := UnmarshalResponse(dt)
	require.NoError(t, err)
	return resp.Schema
}

func TestUnmarshalResponseEnvelope(t *testing.T) {
	t.Parallel()

	bare := `{"__schema":{"queryType":{"name":"Query"},"types":[{"kind":"OBJECT","name":"Query"}]}}`
	wrapped := `{"data":` + bare + `}`

	for _, in := range []string{bare, wrapped} {
		resp, err := UnmarshalResponse([]byte(in))
		require.NoError(t, err)
		require.Equal(t, "Query", resp.Schema.Query().Name)
	}

	_, err := UnmarshalResponse([]byte(`{"data":{}}`))
	require.ErrorContains(t, err, "missing __schema")
}

func TestVisitOrder(t *testing.T) {
	t.Parallel()
	schema := loadFixture(t)

	var visited []string
	err := schema.Visit(VisitHandlers{
		Scalar: func(t *Type) error { visited = append(visited, "scalar:"+t.Name); return nil },
		Input:  func(t *Type) error { visited = append(visited, "input:"+t.Name); return nil },
		Object: func(t *Type) error { visited = append(visited, "object:"+t.Name); return nil },
		Enum:   func(t *Type) error { visited = append(visited, "enum:"+t.Name); return nil },
	})
	require.NoError(t, err)

	require.Contains(t, visited, "scalar:ContainerID")
	require.Contains(t, visited, "input:BuildArg")
	require.Contains(t, visited, "object:Query")
	require.Contains(t, visited, "enum:CacheSharingMode")
	require.NotContains(t, visited, "scalar:String")
	require.NotContains(t, visited, "scalar:Boolean")

	for _, name := range visited {
		require.False(t, strings.Contains(name, ":__"), "introspection type %s visited", name)
	}

	kindRank := map[string]int{"scalar": 0, "input": 1, "object": 2, "enum": 3}
	for i := 1; i < len(visited); i++ {
		prevKind, prevName, _ := strings.Cut(visited[i-1], ":")
		kind, name, _ := strings.Cut(visited[i], ":")
		if prevKind == kind {
			require.Less(t, prevName, name)
		} else {
			require.Less(t, kindRank[prevKind], kindRank[kind])
		}
	}
}

func TestVisitSortsFields(t *testing.T) {
	t.Parallel()
	schema := loadFixture(t)

	require.NoError(t, schema.Visit(VisitHandlers{}))

	container := schema.Types.Get("Container")
	require.NotNil(t, container)
	for i := 1; i < len(container.Fields); i++ {
		require.Less(t, container.Fields[i-1].Name, container.Fields[i].Name)
	}

	// arguments keep schema order
	withMountedCache := container.Field("withMountedCache")
	require.NotNil(t, withMountedCache)
	var args []string
	for _, arg := range withMountedCache.Args {
		args = append(args, arg.Name)
	}
	require.Equal(t, []string{"path", "cache", "source", "sharing"}, args)
}

func TestVisitSkipsRootMarkersAndAbstractTypes(t *testing.T) {
	t.Parallel()

	schema := &Schema{
		Types: Types{
			{Kind: TypeKindObject, Name: "Query"},
			{Kind: TypeKindObject, Name: "Mutation"},
			{Kind: TypeKindObject, Name: "Subscription"},
			{Kind: TypeKindInterface, Name: "Node"},
			{Kind: TypeKindUnion, Name: "Result"},
		},
	}
	schema.QueryType.Name = "Query"
	schema.MutationType = &struct {
		Name string `json:"name,omitempty"`
	}{Name: "Mutation"}
	schema.SubscriptionType = &struct {
		Name string `json:"name,omitempty"`
	}{Name: "Subscription"}

	var visited []string
	err := schema.Visit(VisitHandlers{
		Object: func(t *Type) error { visited = append(visited, t.Name); return nil },
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Query"}, visited)
}

func TestTypeRef(t *testing.T) {
	t.Parallel()

	str := &TypeRef{Kind: TypeKindScalar, Name: "String"}
	nonNullStr := &TypeRef{Kind: TypeKindNonNull, OfType: str}
	list := &TypeRef{Kind: TypeKindNonNull, OfType: &TypeRef{Kind: TypeKindList, OfType: nonNullStr}}
	objList := &TypeRef{Kind: TypeKindList, OfType: &TypeRef{Kind: TypeKindObject, Name: "Label"}}

	require.True(t, str.IsOptional())
	require.False(t, nonNullStr.IsOptional())
	require.True(t, nonNullStr.IsScalar())
	require.True(t, list.IsList())
	require.True(t, list.IsListOfScalar())
	require.False(t, list.IsListOfObject())
	require.True(t, objList.IsListOfObject())
	require.Equal(t, "Label", objList.Inner().Name)
	require.Equal(t, "[String!]!", list.String())
	require.Equal(t, 1, list.ListDepth())
}

func TestInputValues(t *testing.T) {
	t.Parallel()

	def := `"x"`
	args := InputValues{
		{Name: "a", TypeRef: &TypeRef{Kind: TypeKindNonNull, OfType: &TypeRef{Kind: TypeKindScalar, Name: "String"}}},
		{Name: "b", TypeRef: &TypeRef{Kind: TypeKindScalar, Name: "String"}},
		{Name: "c", DefaultValue: &def, TypeRef: &TypeRef{Kind: TypeKindNonNull, OfType: &TypeRef{Kind: TypeKindScalar, Name: "String"}}},
	}
	require.True(t, args.HasOptionals())
	require.Len(t, args.Required(), 1)
	require.Equal(t, "a", args.Required()[0].Name)
	require.Len(t, args.Optionals(), 2)
	require.False(t, args[:1].HasOptionals())
}
