package plural

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
)

func newDefault() *Processor {
	return New(domain.DefaultPluralizableWords())
}

func TestProcessor_Name(t *testing.T) {
	assert.Equal(t, "plural", newDefault().Name())
}

func TestIsPluralizable(t *testing.T) {
	p := newDefault()

	assert.False(t, p.IsPluralizable("A"))
	assert.False(t, p.IsPluralizable("AB"))
	assert.False(t, p.IsPluralizable("super"))
	assert.False(t, p.IsPluralizable("super types"))
	assert.False(t, p.IsPluralizable("alliance"))
	assert.False(t, p.IsPluralizable(""))
	assert.False(t, p.IsPluralizable("foo type "))

	assert.True(t, p.IsPluralizable("foo seat"))
	assert.True(t, p.IsPluralizable("foo transfer"))
	assert.True(t, p.IsPluralizable("foo type"))
	assert.True(t, p.IsPluralizable("foo bar number"))
	assert.True(t, p.IsPluralizable("foo code"))
	assert.True(t, p.IsPluralizable("foo Version"))
	assert.True(t, p.IsPluralizable("CARRIER"))
}

func TestIsPluralizable_GluedListEntry(t *testing.T) {
	p := newDefault()

	assert.True(t, p.IsPluralizable("airportdestination"))
	assert.False(t, p.IsPluralizable("destination"))
	assert.True(t, p.IsPluralizable("airport"))
}

func TestNew_LowercasesWords(t *testing.T) {
	p := New([]string{"Gate"})

	assert.True(t, p.IsPluralizable("boarding gate"))
	assert.False(t, p.IsPluralizable("boarding seat"))
}

func TestPluralize(t *testing.T) {
	p := newDefault()

	assert.Equal(t, []string{"A", "alliance"}, p.Pluralize([]string{"A", "alliance"}))
	assert.Equal(t, []string{"foo type", "foo types"}, p.Pluralize([]string{"foo type"}))
	assert.Equal(t,
		[]string{"foo bar number", "foo bar numbers", "foo type", "foo types"},
		p.Pluralize([]string{"foo bar number", "foo type"}))
	assert.Empty(t, p.Pluralize(nil))
}

func TestPluralize_NoDeduplication(t *testing.T) {
	p := newDefault()

	got := p.Pluralize([]string{"seat", "seat"})
	assert.Equal(t, []string{"seat", "seats", "seat", "seats"}, got)
}

func TestProcess(t *testing.T) {
	p := newDefault()
	entry := &domain.Entry{Keys: []string{"boarding pass", "fare code"}, Definition: "unchanged"}

	err := p.Process(context.Background(), entry, []string{"ignored"})
	require.NoError(t, err)

	assert.Equal(t, []string{"boarding pass", "fare code", "fare codes"}, entry.Keys)
	assert.Equal(t, "unchanged", entry.Definition)
}
