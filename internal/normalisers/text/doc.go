// Package text canonicalises table cell text before it is annotated
// and written as markup.
package text
