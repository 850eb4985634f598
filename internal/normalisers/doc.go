// Package normalisers groups the document normalisers. The html package
// extracts table rows from HTML documents; the text package cleans cell
// text for markup output.
package normalisers
