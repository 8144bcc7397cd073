// Package services provides domain services: business rules that involve
// more than one aggregate and therefore belong to none of them.
//
// The package includes:
//   - OrderAuthorizationService: who may change, view or cancel an order
//
// Services are stateless; the zero value is ready to use.
package services
