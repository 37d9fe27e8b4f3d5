// Package order provides the order aggregate: an Order together with its
// line items, treated as one consistency boundary for pricing and stock-commit
// purposes.
//
// The package includes:
//   - Order: the aggregate root holding status, delivery cost, tax percent,
//     and the insertion-ordered item collection
//   - Item: a line item referencing a product, with the unit price frozen at
//     creation time
//   - Status: a state machine gating allowed status transitions
//   - CalculateTotals: pure pricing over explicit catalog snapshots
//
// Key business rules:
//   - An order always belongs to a customer and holds at least one item
//   - At most one item per product within an order
//   - Items may be freely replaced while the order is a draft
//   - Shipped and cancelled are terminal: no further edits
//   - Totals are derived on demand from current catalog state and are never
//     cached or stored
package order
