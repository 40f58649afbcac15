package domain

import "errors"

var (
	// Company errors
	ErrCompanyNotFound            = errors.New("company not found")
	ErrInsufficientHoldingBalance = errors.New("holding account balance is insufficient")
	ErrCompanyNameRequired        = errors.New("company name is required")
	ErrDuplicateIdentifier        = errors.New("identifier is already in use")

	// Contract errors
	ErrContractNotFound    = errors.New("active contract not found")
	ErrInvalidInterestRate = errors.New("interest rate must be between 0 and 1")
	ErrProductTypeMismatch = errors.New("line of credit flag does not match contract product type")
	ErrInvalidProductType  = errors.New("invalid product type")

	// Loan errors
	ErrLoanNotFound         = errors.New("loan not found")
	ErrLoanNotRepayable     = errors.New("loan is not funded")
	ErrLoanCompanyMismatch  = errors.New("loan does not belong to company")
	ErrNegativeLoanBalance  = errors.New("allocation would leave a negative loan balance")
	ErrInvalidMaturityDate  = errors.New("maturity date must not precede origination date")
	ErrDuplicateLoanInInput = errors.New("loan appears more than once")

	// Payment errors
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrPaymentAlreadySettled       = errors.New("payment is already settled")
	ErrInvalidAmount               = errors.New("amount must be positive")
	ErrInvalidPaymentMethod        = errors.New("invalid payment method")
	ErrInvalidPaymentOption        = errors.New("invalid payment option")
	ErrRequestedDateRequired       = errors.New("requested payment date is required for reverse draft ACH")
	ErrNoItemsCovered              = errors.New("payment must cover at least one loan or account fees")
	ErrInvalidSettlementDate       = errors.New("settlement date must not precede deposit date")
	ErrSettlementHorizonExceeded   = errors.New("settlement date is too far after deposit date")
	ErrAllocationMismatch          = errors.New("transaction amount must equal the sum of its components")
	ErrNegativeAllocation          = errors.New("transaction components must not be negative")
	ErrAllocationExceedsPayment    = errors.New("allocated amount exceeds payment amount")
	ErrInvalidAllocationField      = errors.New("invalid allocation field")
	ErrLoanNotInEffect             = errors.New("loan is not part of the repayment effect")
	ErrRepaymentEffectNotAvailable = errors.New("repayment effect has not been computed")

	// Settlement wizard errors
	ErrSettlementSessionNotFound = errors.New("settlement session not found")
	ErrInvalidStepTransition     = errors.New("invalid settlement step transition")

	// Borrowing base errors
	ErrMissingRequiredInput     = errors.New("required borrowing base input is missing")
	ErrNegativeInput            = errors.New("borrowing base input must not be negative")
	ErrCustomAmountNotPermitted = errors.New("custom amount may only be entered by bank users")
	ErrCustomNoteRequired       = errors.New("custom amount requires a note")
	ErrInvalidWeight            = errors.New("borrowing base weight must be between 0 and 1")

	// Late fee errors
	ErrInvalidLateFeeTier = errors.New("invalid late fee tier")

	// EBBA application errors
	ErrEbbaApplicationNotFound = errors.New("ebba application not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrRejectionNoteRequired   = errors.New("rejection note is required")

	// Date errors
	ErrInvalidDate = errors.New("invalid date")
)

// ruleViolations are the errors a caller can correct by changing the request.
var ruleViolations = []error{
	ErrCompanyNotFound,
	ErrInsufficientHoldingBalance,
	ErrContractNotFound,
	ErrProductTypeMismatch,
	ErrLoanNotFound,
	ErrLoanNotRepayable,
	ErrLoanCompanyMismatch,
	ErrNegativeLoanBalance,
	ErrDuplicateLoanInInput,
	ErrPaymentNotFound,
	ErrPaymentAlreadySettled,
	ErrInvalidAmount,
	ErrInvalidPaymentOption,
	ErrNoItemsCovered,
	ErrInvalidSettlementDate,
	ErrSettlementHorizonExceeded,
	ErrAllocationMismatch,
	ErrNegativeAllocation,
	ErrAllocationExceedsPayment,
	ErrInvalidAllocationField,
	ErrRepaymentEffectNotAvailable,
	ErrInvalidDate,
	ErrCompanyNameRequired,
	ErrDuplicateIdentifier,
}

// IsRuleViolation reports whether err is a business rule failure rather than
// an infrastructure failure.
func IsRuleViolation(err error) bool {
	for _, target := range ruleViolations {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
