// Package services implements the enrichment pipeline's business logic:
// paginated traversal, schema adapters, the enrichment policy, the
// generation boundary discipline, write-back and aggregation.
//
// Services orchestrate calls to driven ports (adapters) and carry no
// transport or serialisation concerns of their own.
package services
