// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - BlockLocator: Finds the ingredient block in screen text
//   - TextSource: Turns captured bytes into screen text
//   - TextSourceRegistry: Selects the text source for a MIME type
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Screen: The active screen. Without one, scans report no content.
//   - EventPublisher: Receives scan events. Without one, events are discarded.
//   - ScanStore: Scan history persistence. Without one, history is not kept.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, source, or extractor package
package driven
