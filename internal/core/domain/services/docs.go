// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the courier system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PackageDispatcher: A domain service for selecting drivers for pending packages
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
