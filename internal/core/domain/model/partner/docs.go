// Package partner models delivery partners: their availability, advisory
// location and the count of orders they currently carry.
//
// Business rules:
//   - only available partners take new orders
//   - switching a partner off keeps the orders it already holds
//   - the active delivery count mirrors the partner's undelivered orders
package partner
