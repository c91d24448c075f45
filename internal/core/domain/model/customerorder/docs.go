// Package customerorder provides the CustomerOrder aggregate of the shop.
//
// A CustomerOrder is a plain persisted record: an identifier assigned by the
// datastore, the business reference of the customer who placed it and the
// moment it was created. It has no lifecycle of its own beyond create,
// full-replace update and delete.
//
// Key business rules:
//   - A new order carries no identifier; the datastore assigns one on insert
//   - A restored order always carries a positive identifier
//   - The customer reference is required and at most MaxCustomerIDLength characters
//   - The creation time is optional and always held in UTC
package customerorder
