// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Connector: Fetches raw HTML from a file or over HTTP
//   - GlossaryNormaliser: Extracts glossary rows from a Word-exported table
//   - AirportNormaliser: Extracts an airport page from a Wikipedia table
//   - PostProcessor: One annotation stage applied to every entry
//   - PostProcessorPipeline: The ordered chain of PostProcessors
//   - ArticleRenderer: Formats articles as markup fragments
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
