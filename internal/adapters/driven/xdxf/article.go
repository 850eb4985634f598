// Package xdxf renders dictionary articles as XDXF markup fragments and
// writes fragment sequences.
package xdxf

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/xdxfgen/internal/core/domain"
	"github.com/custodia-labs/xdxfgen/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.ArticleRenderer = (*Renderer)(nil)

const keySeparator = "\n      "

// Renderer produces XDXF article fragments indented for inclusion in a
// <lexicon> element.
type Renderer struct{}

// NewRenderer creates a new XDXF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Glossary renders one glossary entry.
func (r *Renderer) Glossary(entry domain.Entry) string {
	keys := make([]string, len(entry.Keys))
	for i, key := range entry.Keys {
		keys[i] = "<k>" + key + "</k>"
	}

	var b strings.Builder
	b.WriteString("    <ar>\n")
	b.WriteString("      " + strings.Join(keys, keySeparator) + "\n")
	b.WriteString("      <def>\n")
	b.WriteString("        <deftext>\n")
	b.WriteString("          " + entry.Definition + "\n")
	b.WriteString("        </deftext>\n")
	b.WriteString("      </def>\n")
	b.WriteString("    </ar>")
	return b.String()
}

// Category renders the article every airport entry points to.
func (r *Renderer) Category() string {
	return fmt.Sprintf(`    <ar><k id="%s">%s</k><def><deftext>%s</deftext></def></ar>`,
		domain.AirportCategoryID, domain.AirportCategoryTitle, domain.AirportCategoryTitle)
}

// SourceComment records where the following airport articles came from.
func (r *Renderer) SourceComment(page *domain.AirportPage) string {
	return fmt.Sprintf("    <!-- From %s: %s -->", page.Title, page.URL)
}

// Airport renders one airport row of page. The ICAO line is left
// empty when the row has no ICAO code.
func (r *Renderer) Airport(page *domain.AirportPage, row domain.AirportRow) string {
	icao := ""
	if row.ICAO != "" {
		icao = "<k>" + row.ICAO + "</k>"
	}

	var b strings.Builder
	b.WriteString("    <ar>\n")
	b.WriteString("      <k>" + row.IATA + "</k>\n")
	b.WriteString("      " + icao + "\n")
	b.WriteString("      <def>\n")
	b.WriteString("        <deftext>\n")
	fmt.Fprintf(&b, "          %s <categ>(<kref idref=\"%s\">%s</kref>)</categ>\n",
		row.Name, domain.AirportCategoryID, domain.AirportCategoryTitle)
	b.WriteString("          <def>\n")
	b.WriteString("            <deftext>\n")
	b.WriteString("              " + row.Location + "\n")
	fmt.Fprintf(&b, "              <iref href=\"%s\">%s</iref>\n", page.URL, page.Title)
	b.WriteString("            </deftext>\n")
	b.WriteString("          </def>\n")
	b.WriteString("        </deftext>\n")
	b.WriteString("      </def>\n")
	b.WriteString("    </ar>")
	return b.String()
}
