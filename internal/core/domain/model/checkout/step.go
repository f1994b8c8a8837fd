package checkout

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Step represents one phase of the checkout workflow.
// It implements a state machine with a fixed forward order and no skipping:
//
//	StepProduct <──> StepAddress <──> StepConfirm
//
// Forward transitions are gated by the workflow's validation rules; backward
// transitions are always structurally allowed (the aggregate decides whether
// they are permitted in context). There is no step past StepConfirm -
// completion is the orderConfirmed flag on the aggregate, not a step.
type Step int

const (
	// Unknown represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	Unknown Step = iota

	// StepProduct is the initial step, reviewing the product selection.
	StepProduct

	// StepAddress is the delivery address selection step.
	StepAddress

	// StepConfirm is the final step where the order is reviewed and placed.
	StepConfirm
)

// getStepStrings returns a map of Step values to their string representations.
func getStepStrings() map[Step]string {
	return map[Step]string{
		Unknown:     "Unknown",
		StepProduct: "Product",
		StepAddress: "Address",
		StepConfirm: "Confirm",
	}
}

// getValidStepStrings returns a map of only valid Step values.
func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Step]string{
		StepProduct: "Product",
		StepAddress: "Address",
		StepConfirm: "Confirm",
	}
}

// Validate checks if the Step value is valid.
// Valid steps are StepProduct, StepAddress and StepConfirm; Unknown and any
// other values are invalid.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the human-readable name of the step. It implements the
// fmt.Stringer interface and is safe to call on any Step value.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Forward returns the step that follows this one.
//
// Valid transitions:
//   - StepProduct -> StepAddress
//   - StepAddress -> StepConfirm
//
// StepConfirm has no forward step: placing the order is a distinct action on
// the aggregate, not a step transition.
func (s Step) Forward() (Step, error) {
	switch s {
	case StepProduct:
		return StepAddress, nil
	case StepAddress:
		return StepConfirm, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"step",
			fmt.Errorf("%s has no forward step", s),
		)
	}
}

// Backward returns the step that precedes this one.
//
// Valid transitions:
//   - StepConfirm -> StepAddress
//   - StepAddress -> StepProduct
//
// StepProduct has no backward step.
func (s Step) Backward() (Step, error) {
	switch s {
	case StepConfirm:
		return StepAddress, nil
	case StepAddress:
		return StepProduct, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"step",
			fmt.Errorf("%s has no backward step", s),
		)
	}
}
