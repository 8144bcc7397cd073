// Package order provides the Order aggregate of the food-ordering core.
//
// The package includes:
//   - Order: the aggregate root, owning its items and delivery data
//   - Item: an ordered food with a price snapshot taken at order time
//   - Status: the state machine that governs the order lifecycle
//
// Key business rules:
//   - An order has at least one item and a delivery address of 10+ characters
//   - Status follows Pending -> Preparing -> Ready -> OutForDelivery -> Delivered
//   - Any non-delivered order can be cancelled
//   - The total is always derived from the items, never stored
package order
