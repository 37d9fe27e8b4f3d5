// Package catalog provides the domain entities for customers and products.
// Catalog records are the read-side inputs for order pricing: pricing reads
// current prices and discount percents but never mutates catalog state. The
// only mutation the order flow performs against the catalog is the one-time
// stock decrement when an order is confirmed.
//
// Key business rules:
//   - Customer and product discount percents are bounded to [0, 100]
//   - Product price and stock quantity are never negative
//   - A product with zero stock must not be active (enforced at write time)
//   - Stock decrements fail atomically when the requested quantity exceeds
//     the current stock
package catalog
