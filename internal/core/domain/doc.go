// Package domain defines the core business entities for reibun.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Container: A node of the hierarchical content store
//   - Row: A vocabulary record after adapter normalisation
//   - Card: One export record (front, back, tag)
//   - Example: One parsed three-line usage example
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
