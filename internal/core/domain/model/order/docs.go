// Package order implements the Order aggregate of the marketplace: line items
// with frozen prices, the fulfillment lifecycle and its refund sub-workflow.
//
// The package includes:
//   - Order: aggregate root holding items, buyer info, status, partner and refund
//   - Status: lifecycle states and the transition table with per-edge actor rules
//   - Refund: the refund record, requested once and resolved once
//   - Event: changes recorded by the aggregate for publishing after commit
//
// Key business rules:
//   - the total is fixed at creation
//   - sellers move the order through confirmed, preparing and ready_for_ship
//   - only the system or an admin dispatches delivery orders; the assigned partner delivers them
//   - buyers may cancel only before preparing; admins may cancel any non-terminal order
//   - pickup orders never get a delivery partner
package order
