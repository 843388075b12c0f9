package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The registry feeds the prompt and Symbols feeds the interpreter; a name in
// one but not the other means the model can be told about an operation that
// scripts cannot call, or vice versa.
func TestRegistryMatchesSymbols(t *testing.T) {
	exported, ok := Symbols["sheetflow/ops/ops"]
	require.True(t, ok)

	registered := make(map[string]bool)
	for _, d := range Registry() {
		registered[d.Name] = true
		assert.Contains(t, exported, d.Name, "registered operation %s missing from Symbols", d.Name)
	}
	for name := range exported {
		assert.True(t, registered[name], "symbol %s missing from registry", name)
	}
}

func TestRegistryDescriptorsComplete(t *testing.T) {
	descriptors := Registry()
	assert.Len(t, descriptors, 24)

	seen := make(map[string]bool)
	for _, d := range descriptors {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Description, "operation %s has no description", d.Name)
		assert.False(t, seen[d.Name], "duplicate registration of %s", d.Name)
		seen[d.Name] = true
	}
}

func TestRegistryReturnsCopy(t *testing.T) {
	first := Registry()
	first[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Registry()[0].Name)
}
