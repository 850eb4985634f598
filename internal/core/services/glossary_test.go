package services

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/xdxfgen/internal/adapters/driven/xdxf"
	"github.com/custodia-labs/xdxfgen/internal/connectors/filesystem"
	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/normalisers/html"
	"github.com/custodia-labs/xdxfgen/internal/postprocessors"
)

const glossaryDoc = `<html><body><div><table>
<tr><th>Phrase</th><th>Abbr</th><th>Definition</th></tr>
<tr><td>BE / B.E.</td><td>BE</td><td>See BE.</td></tr>
<tr><td>boarding pass</td><td>BP</td><td>A pass for a seat. Example: paper, mobile.</td></tr>
<tr><td>seat</td><td></td><td>Where a passenger sits.</td></tr>
</table></div></body></html>`

func newTestGlossaryService() *GlossaryService {
	return NewGlossaryService(
		filesystem.New(),
		html.New(),
		postprocessors.NewDefaultPipeline(domain.DefaultPluralizableWords()),
		xdxf.NewRenderer(),
	)
}

func writeGlossary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xx.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func collect(t *testing.T, seq iter.Seq2[string, error]) ([]string, error) {
	t.Helper()
	var out []string
	for fragment, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, fragment)
	}
	return out, nil
}

func TestGlossaryService_Convert(t *testing.T) {
	path := writeGlossary(t, glossaryDoc)

	articles, err := collect(t, newTestGlossaryService().Convert(context.Background(), path))
	require.NoError(t, err)
	require.Len(t, articles, 3)

	assert.Equal(t, "    <ar>\n"+
		"      <k>B.E.</k>\n"+
		"      <k>BE</k>\n"+
		"      <def>\n"+
		"        <deftext>\n"+
		"          See BE.\n"+
		"        </deftext>\n"+
		"      </def>\n"+
		"    </ar>", articles[0])

	assert.Contains(t, articles[1], "<k>boarding pass</k>\n      <k>BP</k>")
	assert.Contains(t, articles[1],
		`A pass for a <kref>seat</kref>. <ex type="exm"><ex_orig>Example: paper, mobile.</ex_orig></ex>`)

	assert.Contains(t, articles[2], "<k>seat</k>\n      <k>seats</k>")
	assert.Contains(t, articles[2], "Where a passenger sits.")
}

func TestGlossaryService_Convert_IsLazy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "later.html")
	seq := newTestGlossaryService().Convert(context.Background(), path)

	// The file is created after the sequence and read on iteration.
	require.NoError(t, os.WriteFile(path, []byte(glossaryDoc), 0o600))

	articles, err := collect(t, seq)
	require.NoError(t, err)
	assert.Len(t, articles, 3)
}

func TestGlossaryService_Convert_SingleUse(t *testing.T) {
	seq := newTestGlossaryService().Convert(context.Background(), writeGlossary(t, glossaryDoc))

	_, err := collect(t, seq)
	require.NoError(t, err)

	_, err = collect(t, seq)
	assert.ErrorIs(t, err, domain.ErrSequenceConsumed)
}

func TestGlossaryService_Convert_StopsEarly(t *testing.T) {
	seq := newTestGlossaryService().Convert(context.Background(), writeGlossary(t, glossaryDoc))

	var got []string
	for fragment, err := range seq {
		require.NoError(t, err)
		got = append(got, fragment)
		break
	}
	assert.Len(t, got, 1)
}

func TestGlossaryService_Convert_MissingFile(t *testing.T) {
	seq := newTestGlossaryService().Convert(context.Background(), filepath.Join(t.TempDir(), "missing.html"))

	articles, err := collect(t, seq)
	assert.Empty(t, articles)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestGlossaryService_Convert_BadRow(t *testing.T) {
	doc := strings.Replace(glossaryDoc, "<td>seat</td><td></td>", "<td>seat</td>", 1)

	articles, err := collect(t, newTestGlossaryService().Convert(context.Background(), writeGlossary(t, doc)))
	assert.Empty(t, articles)
	assert.ErrorIs(t, err, domain.ErrRowShape)
}

func TestGlossaryService_Convert_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collect(t, newTestGlossaryService().Convert(ctx, writeGlossary(t, glossaryDoc)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRowKeys(t *testing.T) {
	tests := []struct {
		name string
		row  domain.GlossaryRow
		want []string
	}{
		{
			name: "phrase and abbreviation",
			row:  domain.GlossaryRow{Phrase: "BE / B.E.", Abbr: "BE"},
			want: []string{"BE", "B.E."},
		},
		{
			name: "kref tags dropped",
			row:  domain.GlossaryRow{Phrase: "<kref>fare</kref> code", Abbr: ""},
			want: []string{"fare code"},
		},
		{
			name: "empty parts dropped",
			row:  domain.GlossaryRow{Phrase: "seat / ", Abbr: "/ST"},
			want: []string{"seat", "ST"},
		},
		{
			name: "nothing",
			row:  domain.GlossaryRow{Phrase: " ", Abbr: ""},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rowKeys(tt.row))
		})
	}
}

func TestCollectEntries(t *testing.T) {
	rows := []domain.GlossaryRow{
		{Phrase: "seat", Definition: "first"},
		{Phrase: "BE / B.E.", Abbr: "BE", Definition: "be"},
		{Phrase: "", Abbr: "", Definition: "orphan"},
		{Phrase: "seat", Definition: "second"},
	}

	entries := collectEntries(rows)

	require.Len(t, entries, 2)
	assert.Equal(t, domain.Entry{Keys: []string{"B.E.", "BE"}, Definition: "be"}, entries[0])
	assert.Equal(t, domain.Entry{Keys: []string{"seat"}, Definition: "second"}, entries[1])
}

func TestCollectEntries_PermutedKeys(t *testing.T) {
	rows := []domain.GlossaryRow{
		{Phrase: "boarding pass / BP", Definition: "first"},
		{Phrase: "seat", Definition: "seat"},
		{Phrase: "BP / boarding pass", Definition: "second"},
		{Phrase: "boarding pass", Abbr: "BP", Definition: "third"},
	}

	entries := collectEntries(rows)

	require.Len(t, entries, 2)
	assert.Equal(t, domain.Entry{Keys: []string{"boarding pass", "BP"}, Definition: "third"}, entries[0])
	assert.Equal(t, domain.Entry{Keys: []string{"seat"}, Definition: "seat"}, entries[1])
}

func TestCollectEntries_StableKeyOrder(t *testing.T) {
	entries := collectEntries([]domain.GlossaryRow{{Phrase: "AB / CD / boarding"}})

	require.Len(t, entries, 1)
	assert.Equal(t, []string{"boarding", "AB", "CD"}, entries[0].Keys)
}

func TestTermIndex(t *testing.T) {
	entries := []domain.Entry{
		{Keys: []string{"seat", "S"}},
		{Keys: []string{"boarding pass", "BP"}},
		{Keys: []string{"seat"}},
		{Keys: []string{"B.E.", "BE"}},
	}

	assert.Equal(t, []string{"boarding pass", "B.E.", "seat", "BE", "BP"}, termIndex(entries))
}
