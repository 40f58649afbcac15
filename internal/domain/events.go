package domain

import "time"

// Event types
const (
	EventTypePaymentCreated       = "payment.created"
	EventTypeRepaymentSettled     = "repayment.settled"
	EventTypeEbbaSubmitted        = "ebba_application.submitted"
	EventTypeEbbaApproved         = "ebba_application.approved"
	EventTypeEbbaRejected         = "ebba_application.rejected"
	EventTypeContractVersionAdded = "contract.version_added"
)

// Aggregate types
const (
	AggregateTypePayment         = "payment"
	AggregateTypeEbbaApplication = "ebba_application"
	AggregateTypeContract        = "contract"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// PaymentCreatedEvent payload
type PaymentCreatedEvent struct {
	PaymentID       string   `json:"payment_id"`
	CompanyID       string   `json:"company_id"`
	Method          string   `json:"method"`
	RequestedAmount string   `json:"requested_amount"`
	LoanIDs         []string `json:"loan_ids"`
}

// RepaymentSettledEvent payload
type RepaymentSettledEvent struct {
	PaymentID          string   `json:"payment_id"`
	CompanyID          string   `json:"company_id"`
	Amount             string   `json:"amount"`
	ToPrincipal        string   `json:"to_principal"`
	ToInterest         string   `json:"to_interest"`
	ToFees             string   `json:"to_fees"`
	ToAccountFees      string   `json:"to_account_fees"`
	FromHoldingAccount string   `json:"from_holding_account"`
	Leftover           string   `json:"leftover"`
	SettlementDate     string   `json:"settlement_date"`
	ClosedLoanIDs      []string `json:"closed_loan_ids"`
}

// EbbaApplicationEvent payload
type EbbaApplicationEvent struct {
	ApplicationID           string `json:"application_id"`
	CompanyID               string `json:"company_id"`
	Status                  string `json:"status"`
	CalculatedBorrowingBase string `json:"calculated_borrowing_base"`
	ApplicationDate         string `json:"application_date"`
}

// ContractVersionAddedEvent payload
type ContractVersionAddedEvent struct {
	ContractID  string `json:"contract_id"`
	CompanyID   string `json:"company_id"`
	Version     int64  `json:"version"`
	ProductType string `json:"product_type"`
}
