// Package user models the people who place and manage orders: customers
// (role USER) and staff (CEO, ADMIN).
package user
