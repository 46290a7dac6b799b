package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileTemplate(t *testing.T) {
	tmpl, err := CompileTemplate("{httpMethod}_{lastSegment}By{tag}")
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		{Placeholder: PlaceholderHTTPMethod},
		{Literal: "_", IsLiteral: true},
		{Placeholder: PlaceholderLastSegment},
		{Literal: "By", IsLiteral: true},
		{Placeholder: PlaceholderTag},
	}, tmpl.Segments())
	assert.False(t, tmpl.IsConstant())
	assert.False(t, tmpl.CanBeEmpty())
	assert.True(t, tmpl.Uses(PlaceholderTag))
	assert.False(t, tmpl.Uses(PlaceholderOperationID))

	values := map[Placeholder]string{
		PlaceholderHTTPMethod:  "Get",
		PlaceholderLastSegment: "PetId",
		PlaceholderTag:         "Pet",
	}
	got := tmpl.Expand(func(p Placeholder) string { return values[p] })
	assert.Equal(t, "Get_PetIdByPet", got)
}

func TestCompileTemplate_Aliases(t *testing.T) {
	tmpl, err := CompileTemplate("{operationName}{method}")
	require.NoError(t, err)

	assert.True(t, tmpl.Uses(PlaceholderOperationID))
	assert.True(t, tmpl.Uses(PlaceholderHTTPMethod))
}

func TestCompileTemplate_ConstantAndEmpty(t *testing.T) {
	constant, err := CompileTemplate("Execute")
	require.NoError(t, err)
	assert.True(t, constant.IsConstant())
	assert.False(t, constant.CanBeEmpty())

	tagOnly, err := CompileTemplate("{tag}{tag}")
	require.NoError(t, err)
	assert.True(t, tagOnly.CanBeEmpty())
}

func TestCompileTemplate_Errors(t *testing.T) {
	tests := []struct {
		src  string
		kind ErrorKind
	}{
		{"{unknown}", KindUnknownPlaceholder},
		{"{}", KindUnknownPlaceholder},
		{"Get{tag", KindMalformedTemplate},
		{"Get}", KindMalformedTemplate},
		{"{op{tag}}", KindMalformedTemplate},
		{"Get-Pet", KindMalformedTemplate},
		{"1{tag}", KindMalformedTemplate},
		{"{tag}1", KindMalformedTemplate},
		{"{tag}{tag}2Pets", KindMalformedTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := CompileTemplate(tt.src)
			require.Error(t, err)

			var perr *Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind, perr.Error())
		})
	}
}

func TestCompileTemplate_DigitsAfterNonEmptyPart(t *testing.T) {
	for _, src := range []string{"{operationId}2", "{tag}V2", "Get{tag}1", "{httpMethod}{tag}3"} {
		_, err := CompileTemplate(src)
		assert.NoError(t, err, src)
	}
}
