// Package connectors provides implementations of the Connector interface
// for the document sources the converters read: local files and
// Wikipedia pages.
package connectors
