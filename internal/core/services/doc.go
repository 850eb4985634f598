// Package services implements the driving port interfaces.
// Services contain the conversion logic and orchestrate calls to driven
// ports (connectors, normalisers, post-processors).
package services
