// Package kernel provides the value objects shared by every aggregate of the
// ordering core.
//
// The package includes:
//   - UUID: identifier of users, foods, orders and order items
//   - Money: non-negative decimal amount in an ISO-4217 currency (BRL by default)
//   - MoneyFormatter: the display contract for Money, with a pt-BR default
//
// Values are immutable; every arithmetic operation returns a new value.
package kernel
