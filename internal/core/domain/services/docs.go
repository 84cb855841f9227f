// Package services holds domain services that span aggregates:
//   - OrderFactory: converts a buyer's cart into a pending Order
//   - OrderDispatcher: selects delivery partners and binds them to orders
package services
