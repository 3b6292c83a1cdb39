// Package domain defines the core business entities for eatwise.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ScreenText: Raw text captured from a screen or document
//   - KeywordSet: Ordered anchor and stop phrases
//   - IngredientBlock: The span believed to hold an ingredient list
//   - Event: A typed message published to the active subscriber
//   - ScanRecord: The persisted outcome of one screen scan
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
