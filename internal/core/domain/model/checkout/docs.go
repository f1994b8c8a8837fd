// Package checkout provides the order workflow aggregate for the storefront.
// It implements the step-sequenced checkout state machine with validation
// gates and the single-outstanding-operation rule.
//
// The package includes:
//   - Step: the three ordered workflow phases (Product, Address, Confirm)
//   - Checkout: the aggregate root holding the authoritative step, the
//     immutable product selection, the address set, and the submission
//     outcome
//   - OrderDraft: the write-only order payload built at the final step
//
// Key business rules:
//   - Steps advance strictly in order with no skipping; the gate is
//     consulted before every forward move
//   - orderConfirmed is reachable only from the Confirm step and implies
//     the workflow stays there
//   - The pending flag admits at most one outstanding network operation per
//     checkout and suspends every transition while set
//   - A closed checkout refuses all mutation, so completions of abandoned
//     requests are no-ops
//
// The aggregate performs no I/O itself: fetching addresses and placing the
// order are side effects the application layer triggers on transitions.
package checkout
