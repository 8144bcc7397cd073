// Package food models the menu: dishes with a price, an availability flag
// and the time their last batch came out of the kitchen.
package food
