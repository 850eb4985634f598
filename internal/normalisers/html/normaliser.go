package html

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
	"github.com/custodia-labs/xdxfgen/internal/normalisers/text"
)

// Ensure Normaliser implements the interfaces.
var (
	_ driven.GlossaryNormaliser = (*Normaliser)(nil)
	_ driven.AirportNormaliser  = (*Normaliser)(nil)
)

// Pre-compiled selectors.
var (
	bodyDiv   = cascadia.MustCompile("body div")
	bodyTable = cascadia.MustCompile("body table")
	tableSel  = cascadia.MustCompile("table")
	tbodySel  = cascadia.MustCompile("tbody")
	titleSel  = cascadia.MustCompile("head title")
	headerSel = cascadia.MustCompile("th")
)

// glossaryColumns is the cell count of a Phrase/Abbr/Definition row.
const glossaryColumns = 3

// airportColumns is the minimum cell count of an airport row.
const airportColumns = 4

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// GlossaryRows reads the table inside the first <div> of the body. Rows
// holding a header cell are skipped; every other row must have exactly
// three cells.
func (n *Normaliser) GlossaryRows(ctx context.Context, raw *domain.RawDocument) ([]domain.GlossaryRow, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := parse(raw)
	if err != nil {
		return nil, err
	}

	div := bodyDiv.MatchFirst(doc)
	if div == nil {
		return nil, fmt.Errorf("%w: no <div> in body of %s", domain.ErrTableNotFound, raw.URI)
	}
	table := tableSel.MatchFirst(div)
	if table == nil {
		return nil, fmt.Errorf("%w: no <table> in first <div> of %s", domain.ErrTableNotFound, raw.URI)
	}

	var rows []domain.GlossaryRow
	for i, tr := range tableRows(table) {
		if hasHeaderCell(tr) {
			continue
		}
		cells := children(tr, atom.Td)
		if len(cells) != glossaryColumns {
			return nil, fmt.Errorf("%w: row %d of %s has %d cells, want %d",
				domain.ErrRowShape, i+1, raw.URI, len(cells), glossaryColumns)
		}
		rows = append(rows, domain.GlossaryRow{
			Phrase:     text.Normalise(textContent(cells[0])),
			Abbr:       text.Normalise(textContent(cells[1])),
			Definition: text.Normalise(textContent(cells[2])),
		})
	}
	return rows, nil
}

// AirportPage reads the first table of the body. Its first row must carry
// one of the accepted header layouts; later rows holding a header cell are
// skipped and every other row needs at least four cells.
func (n *Normaliser) AirportPage(ctx context.Context, raw *domain.RawDocument) (*domain.AirportPage, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := parse(raw)
	if err != nil {
		return nil, err
	}

	page := &domain.AirportPage{
		Title: pageTitle(doc, raw.URI),
		URL:   raw.URI,
	}

	table := bodyTable.MatchFirst(doc)
	if table == nil {
		return nil, fmt.Errorf("%w: no <table> in body of %s", domain.ErrTableNotFound, raw.URI)
	}
	tbody := tbodySel.MatchFirst(table)
	if tbody == nil {
		return nil, fmt.Errorf("%w: no <tbody> in first table of %s", domain.ErrTableNotFound, raw.URI)
	}

	trs := children(tbody, atom.Tr)
	if len(trs) == 0 {
		return nil, fmt.Errorf("%w for %s: table is empty", domain.ErrColumnMismatch, raw.URI)
	}

	header := children(trs[0], atom.Th)
	cols := make([]string, 0, len(header))
	for _, th := range header {
		cols = append(cols, headerText(th))
	}
	if !domain.IsAirportLayout(cols) {
		return nil, fmt.Errorf("%w for %s: %q", domain.ErrColumnMismatch, raw.URI, cols)
	}

	for i, tr := range trs[1:] {
		if hasHeaderCell(tr) {
			continue
		}
		cells := children(tr, atom.Td)
		if len(cells) < airportColumns {
			return nil, fmt.Errorf("%w: row %d of %s has %d cells, want at least %d",
				domain.ErrRowShape, i+2, raw.URI, len(cells), airportColumns)
		}
		page.Rows = append(page.Rows, domain.AirportRow{
			IATA:     text.TrimCell(textContent(cells[0])),
			ICAO:     text.TrimCell(textContent(cells[1])),
			Name:     text.TrimCell(textContent(cells[2])),
			Location: text.TrimCell(textContent(cells[3])),
		})
	}
	return page, nil
}

// parse decodes the document and parses it.
func parse(raw *domain.RawDocument) (*html.Node, error) {
	r, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidInput, raw.URI, err)
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidInput, raw.URI, err)
	}
	return doc, nil
}

// decode returns a UTF-8 reader over the document. A charset in the
// content type wins; otherwise valid UTF-8 is read as is and anything else
// goes through the <meta> prescan (Word exports declare windows-1252).
func decode(raw *domain.RawDocument) (io.Reader, error) {
	content := bytes.NewReader(raw.Content)
	if _, params, err := mime.ParseMediaType(raw.MIMEType); err == nil && params["charset"] != "" {
		return charset.NewReader(content, raw.MIMEType)
	}
	if utf8.Valid(raw.Content) {
		return content, nil
	}
	return charset.NewReader(content, raw.MIMEType)
}

// tableRows returns the rows of table, looking through the row groups the
// HTML parser inserts (an implicit <tbody> most of the time). Rows of
// nested tables are not included.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Tr:
			rows = append(rows, c)
		case atom.Thead, atom.Tbody, atom.Tfoot:
			rows = append(rows, children(c, atom.Tr)...)
		}
	}
	return rows
}

// children returns the direct element children of n with the given tag.
func children(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			out = append(out, c)
		}
	}
	return out
}

// hasHeaderCell reports whether a <th> appears anywhere inside the row.
func hasHeaderCell(tr *html.Node) bool {
	return headerSel.MatchFirst(tr) != nil
}

// textContent concatenates every text node below n, untrimmed.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// headerText is the text of a header cell as compared against the layouts.
func headerText(th *html.Node) string {
	s := strings.TrimRightFunc(textContent(th), unicode.IsSpace)
	return strings.ReplaceAll(s, "\u00a0", " ")
}

// pageTitle returns the <title> text, right-trimmed, or falls back to the
// last path segment of uri with underscores turned into spaces.
func pageTitle(doc *html.Node, uri string) string {
	if t := titleSel.MatchFirst(doc); t != nil {
		if title := strings.TrimRightFunc(textContent(t), unicode.IsSpace); title != "" {
			return title
		}
	}

	name := uri
	if u, err := url.Parse(uri); err == nil && u.Path != "" {
		name = u.Path
	}
	name = path.Base(name)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return strings.ReplaceAll(name, "_", " ")
}
