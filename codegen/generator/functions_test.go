package generator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dagger/dagger-go-sdk/codegen/introspection"
)

// bracketFormat renders types in a small language-neutral notation so the
// shared wrapping logic can be checked without a target SDK.
type bracketFormat struct{}

func (bracketFormat) FormatKindList(elem string) string { return "[" + elem + "]" }
func (bracketFormat) FormatKindScalarString() string { return "str" }
func (bracketFormat) FormatKindScalarInt() string { return "int" }
func (bracketFormat) FormatKindScalarFloat() string { return "float" }
func (bracketFormat) FormatKindScalarBoolean() string { return "bool" }
func (bracketFormat) FormatKindEnum(refName string) string { return "enum:" + refName }
func (bracketFormat) FormatOptional(repr string) string { return repr + "?" }

func (bracketFormat) FormatKindScalarDefault(refName string, input bool) string {
	return "scalar:" + refName
}

func (bracketFormat) FormatKindObject(refName string, input bool) string {
	return "object:" + refName
}

func (bracketFormat) FormatKindInputObject(refName string, input bool) string {
	return "input:" + refName
}

func loadFixture(t *testing.T) *introspection.Schema {
	t.Helper()
	schema, err := LoadIntrospection("../introspection/testdata/introspection.json")
	require.NoError(t, err)
	return schema
}

func TestFormatTypeWrapping(t *testing.T) {
	t.Parallel()
	schema := loadFixture(t)
	c := NewCommonFunctions(schema, bracketFormat{})

	container := schema.Types.Get("Container")
	require.NotNil(t, container)

	cases := []struct {
		field  string
		output string
	}{
		{"stdout", "str?"},
		{"exitCode", "int?"},
		{"id", "scalar:ContainerID"},
		{"envVariables", "[object:EnvVariable]"},
		{"from", "object:Container"},
	}
	for _, tc := range cases {
		f := container.Field(tc.field)
		require.NotNil(t, f, tc.field)

		out, err := c.FormatOutputType(f.TypeRef)
		require.NoError(t, err)
		require.Equal(t, tc.output, out, tc.field)
	}
}

func TestFormatInputTypeSubstitutesID(t *testing.T) {
	t.Parallel()
	schema := loadFixture(t)
	c := NewCommonFunctions(schema, bracketFormat{})

	ref := &introspection.TypeRef{
		Kind:   introspection.TypeKindNonNull,
		OfType: &introspection.TypeRef{Kind: introspection.TypeKindObject, Name: "Container"},
	}
	in, err := c.FormatInputType(ref)
	require.NoError(t, err)
	require.Equal(t, "scalar:ContainerID", in)

	out, err := c.FormatOutputType(ref)
	require.NoError(t, err)
	require.Equal(t, "object:Container", out)

	// nullable inputs are never wrapped
	in, err = c.FormatInputType(&introspection.TypeRef{Kind: introspection.TypeKindScalar, Name: "String"})
	require.NoError(t, err)
	require.Equal(t, "str", in)
}

func TestFormatTypeUnsupported(t *testing.T) {
	t.Parallel()
	c := NewCommonFunctions(&introspection.Schema{}, bracketFormat{})

	for _, ref := range []*introspection.TypeRef{
		nil,
		{Kind: introspection.TypeKindInterface, Name: "Node"},
		{Kind: introspection.TypeKindUnion, Name: "Result"},
		{Kind: introspection.TypeKindNonNull, OfType: &introspection.TypeRef{
			Kind:   introspection.TypeKindNonNull,
			OfType: &introspection.TypeRef{Kind: introspection.TypeKindScalar, Name: "String"},
		}},
	} {
		_, err := c.FormatOutputType(ref)
		require.ErrorIs(t, err, ErrUnsupportedKind)
	}
}

func TestIDScalarAndLoader(t *testing.T) {
	t.Parallel()
	schema := loadFixture(t)
	c := NewCommonFunctions(schema, bracketFormat{})

	require.Equal(t, "ContainerID", c.IDScalar("Container"))
	require.Equal(t, "CacheID", c.IDScalar("CacheVolume"))
	require.Equal(t, "", c.IDScalar("EnvVariable"))
	require.Equal(t, "", c.IDScalar("Missing"))
	require.Equal(t, "", c.IDScalar("BuildArg"))

	loader := c.IDLoader("Container")
	require.NotNil(t, loader)
	require.Equal(t, "container", loader.Name)

	require.Nil(t, c.IDLoader("EnvVariable"))
}

func TestLoadIntrospectionMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadIntrospection("testdata/does-not-exist.json")
	require.ErrorIs(t, err, os.ErrNotExist)
}
