// Package domain defines the core entities for xdxfgen.
//
// This package is the innermost layer. It has NO external dependencies
// and defines the fundamental types:
//
//   - RawDocument: Opaque HTML bytes fetched by a connector
//   - GlossaryRow / Entry: One row of a 3-column glossary table and the
//     dictionary article built from it
//   - AirportPage / AirportRow: One Wikipedia airport-code list page
//   - AppSettings: Effective configuration
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
