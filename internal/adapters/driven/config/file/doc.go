// Package file provides the TOML file implementation of driven.ConfigStore.
// Keys are flattened to dot notation on load and nested again on save, so
// "wikipedia.letters" lives in the [wikipedia] table of config.toml.
package file
