// Package address models delivery addresses for the storefront domain.
//
// The package includes:
//   - Draft: user-entered fields validated locally before any network call
//   - Address: the remote-owned record with its server-assigned identifier
//
// Key business rules:
//   - All fields except landmark are mandatory
//   - The contact number must be exactly 10 digits
//   - The zip code must be exactly 6 digits
//   - A draft that violates any rule never reaches the remote API
package address
