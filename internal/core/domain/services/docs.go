// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the sales system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StockCommitService: A domain service that reserves product stock when an
//     order is confirmed
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
