// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContentStore: The hierarchical content store (listing, querying, updates)
//   - ExampleGenerator: The external text-generation backend
//   - CardExporter: The flat tabular sink for export records
//
// # Optional Interfaces
//
//   - Limiter: Paces mutating store calls; nil disables pacing (tests)
//   - ReadingAnalyzer: Morphological reading lookup for the audit pass
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
