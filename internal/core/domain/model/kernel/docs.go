// Package kernel provides the shared value objects used across the
// storefront domain model.
//
// The package includes:
//   - UUID: session identity, minted locally
//   - ID: opaque identifiers assigned by the remote storefront API
//   - Money: positive decimal-backed monetary amounts
//
// All types are immutable value objects whose zero values fail validation;
// instances must be created through the provided constructor functions.
package kernel
