// Package kernel holds the value objects shared by every aggregate of the
// marketplace fulfillment domain:
//   - UUID: identifiers of orders, partners, buyers, sellers and products
//   - Location: advisory coordinates of a delivery partner
//
// Values are immutable and must be built through their constructors.
package kernel
