// Package eventhandlers turns domain events into notifications. Each handler
// accepts one event type and returns the first notification error so the
// dispatcher can log it.
package eventhandlers
