// Package product models the catalog side of the storefront domain.
//
// The package includes:
//   - Product: the read model of a remote catalog record
//   - Selection: the immutable choice of product and quantity that seeds a
//     checkout, with the order total derived at construction
//
// Key business rules:
//   - A selection requires a valid product record and a positive quantity
//   - Quantity may not exceed the product's available stock
//   - TotalAmount is always unit price times quantity; it is computed once
//     and never recalculated downstream
package product
