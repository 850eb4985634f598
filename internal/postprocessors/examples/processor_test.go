package examples

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
)

func TestMarkExamples(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no example", "BE", "BE"},
		{"no closing period", "BE. Example: foo, bar baz", "BE. Example: foo, bar baz"},
		{"single example", "BE. Example: foo, bar. baz",
			`BE. <ex type="exm"><ex_orig>Example: foo, bar.</ex_orig></ex> baz`},
		{"plural keyword", "BE. Examples: foo, bar. baz",
			`BE. <ex type="exm"><ex_orig>Examples: foo, bar.</ex_orig></ex> baz`},
		{"not a whole word", "CounterExample: foo.", "CounterExample: foo."},
		{"after a non-ASCII letter", "éExample: x.", "éExample: x."},
		{"after a digit", "9Example: x.", "9Example: x."},
		{"inner sentence of a skipped match", "éExample: x Example: y.",
			`éExample: x <ex type="exm"><ex_orig>Example: y.</ex_orig></ex>`},
		{"after punctuation", "(Example: x.)", `(<ex type="exm"><ex_orig>Example: x.</ex_orig></ex>)`},
		{"whitespace becomes a space", "Example:\tx.", `<ex type="exm"><ex_orig>Example: x.</ex_orig></ex>`},
		{"no space after colon", "Example:foo.", "Example:foo."},
		{"cut at first period", "Example: e.g. this.",
			`<ex type="exm"><ex_orig>Example: e.</ex_orig></ex>g. this.`},
		{"every sentence", "Example: a. Examples: b, c.",
			`<ex type="exm"><ex_orig>Example: a.</ex_orig></ex> <ex type="exm"><ex_orig>Examples: b, c.</ex_orig></ex>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkExamples(tt.in))
		})
	}
}

func TestProcessor_Name(t *testing.T) {
	assert.Equal(t, "examples", New().Name())
}

func TestProcess(t *testing.T) {
	entry := &domain.Entry{Keys: []string{"Fare"}, Definition: "A price. Example: <kref>BE</kref> fares."}

	err := New().Process(context.Background(), entry, nil)
	require.NoError(t, err)

	assert.Equal(t, `A price. <ex type="exm"><ex_orig>Example: <kref>BE</kref> fares.</ex_orig></ex>`, entry.Definition)
	assert.Equal(t, []string{"Fare"}, entry.Keys)
}
