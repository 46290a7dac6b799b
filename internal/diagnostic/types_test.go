package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning(CodeUnusedIncludeTag, `include tag "x" matches no operation`, "", "")
	d.AddInfo(CodeOperationFiltered, "operation dropped: Deprecated", "", "GET /ping")

	assert.True(t, d.IsValid())
	assert.True(t, d.HasCode(CodeOperationFiltered))
	assert.False(t, d.HasCode(CodeNoOperations))

	var other Diagnostics
	other.AddError("collision", "duplicate method", "PetApi", "getPet")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	require.Error(t, d.Error())
	assert.Equal(t, "[PetApi] getPet: [collision] duplicate method", d.Error().Error())
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{Diagnostic{Message: "plain"}, "plain"},
		{Diagnostic{Code: CodeNoOperations, Message: "empty"}, "[no_operations] empty"},
		{Diagnostic{Operation: "GET /ping", Message: "dropped"}, "GET /ping: dropped"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
	}

	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
