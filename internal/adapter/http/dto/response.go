package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

// CompanyResponse represents a company in API responses.
type CompanyResponse struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Identifier            string          `json:"identifier"`
	HoldingAccountBalance decimal.Decimal `json:"holding_account_balance"`
	Version               int64           `json:"version"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// CompanyFromDomain converts domain company to response.
func CompanyFromDomain(c *domain.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		Identifier:            c.Identifier,
		HoldingAccountBalance: c.HoldingAccountBalance,
		Version:               c.Version,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

// CompaniesFromDomain converts domain companies to responses.
func CompaniesFromDomain(companies []*domain.Company) []*CompanyResponse {
	result := make([]*CompanyResponse, len(companies))
	for i, c := range companies {
		result[i] = CompanyFromDomain(c)
	}
	return result
}

// WeightsFromDomain converts domain weights.
func WeightsFromDomain(w domain.BorrowingBaseWeights) BorrowingBaseWeights {
	return BorrowingBaseWeights{
		AccountsReceivable: w.AccountsReceivable,
		Inventory:          w.Inventory,
		Cash:               w.Cash,
		CashInDaca:         w.CashInDaca,
	}
}

// InputsFromDomain converts domain borrowing base inputs.
func InputsFromDomain(in domain.BorrowingBaseInputs) BorrowingBaseInputs {
	return BorrowingBaseInputs{
		MonthlyAccountsReceivable: in.MonthlyAccountsReceivable,
		MonthlyInventory:          in.MonthlyInventory,
		MonthlyCash:               in.MonthlyCash,
		AmountCashInDaca:          in.AmountCashInDaca,
		AmountCustom:              in.AmountCustom,
		AmountCustomNote:          in.AmountCustomNote,
	}
}

// ContractResponse represents a contract version.
type ContractResponse struct {
	ID                   string               `json:"id"`
	CompanyID            string               `json:"company_id"`
	Version              int64                `json:"version"`
	ProductType          string               `json:"product_type"`
	InterestRate         decimal.Decimal      `json:"interest_rate"`
	MaximumAmount        decimal.Decimal      `json:"maximum_amount"`
	LateFeeStructure     map[string]string    `json:"late_fee_structure"`
	BorrowingBaseWeights BorrowingBaseWeights `json:"borrowing_base_weights"`
	StartDate            Date                 `json:"start_date"`
	EndDate              Date                 `json:"end_date"`
	CreatedAt            time.Time            `json:"created_at"`
}

// ContractFromDomain converts domain contract to response.
func ContractFromDomain(c *domain.Contract) *ContractResponse {
	return &ContractResponse{
		ID:                   c.ID,
		CompanyID:            c.CompanyID,
		Version:              c.Version,
		ProductType:          string(c.ProductType),
		InterestRate:         c.InterestRate,
		MaximumAmount:        c.MaximumAmount,
		LateFeeStructure:     c.LateFeeSchedule.Structure(),
		BorrowingBaseWeights: WeightsFromDomain(c.BorrowingBaseWeights),
		StartDate:            NewDate(c.StartDate),
		EndDate:              NewDate(c.EndDate),
		CreatedAt:            c.CreatedAt,
	}
}

// ContractsFromDomain converts domain contracts to responses.
func ContractsFromDomain(contracts []*domain.Contract) []*ContractResponse {
	result := make([]*ContractResponse, len(contracts))
	for i, c := range contracts {
		result[i] = ContractFromDomain(c)
	}
	return result
}

// LoanBalance is a loan's outstanding amounts by component.
type LoanBalance struct {
	OutstandingPrincipalBalance decimal.Decimal `json:"outstanding_principal_balance"`
	OutstandingInterest         decimal.Decimal `json:"outstanding_interest"`
	OutstandingFees             decimal.Decimal `json:"outstanding_fees"`
}

// BalanceFromDomain converts a domain balance.
func BalanceFromDomain(b domain.LoanBalance) LoanBalance {
	return LoanBalance{
		OutstandingPrincipalBalance: b.OutstandingPrincipalBalance,
		OutstandingInterest:         b.OutstandingInterest,
		OutstandingFees:             b.OutstandingFees,
	}
}

// Transaction is an allocation of a payment to one loan.
type Transaction struct {
	Amount      decimal.Decimal `json:"amount"`
	ToPrincipal decimal.Decimal `json:"to_principal"`
	ToInterest  decimal.Decimal `json:"to_interest"`
	ToFees      decimal.Decimal `json:"to_fees"`
}

// AllocationFromDomain converts a domain allocation.
func AllocationFromDomain(a domain.Allocation) Transaction {
	return Transaction{
		Amount:      a.Amount,
		ToPrincipal: a.ToPrincipal,
		ToInterest:  a.ToInterest,
		ToFees:      a.ToFees,
	}
}

// LoanResponse represents a loan in API responses.
type LoanResponse struct {
	ID                   string          `json:"id"`
	CompanyID            string          `json:"company_id"`
	Identifier           string          `json:"identifier"`
	Status               string          `json:"status"`
	PaymentStatus        string          `json:"payment_status,omitempty"`
	Amount               decimal.Decimal `json:"amount"`
	OriginationDate      Date            `json:"origination_date"`
	MaturityDate         Date            `json:"maturity_date"`
	AdjustedMaturityDate Date            `json:"adjusted_maturity_date"`
	LoanBalance
	BalancesAsOf Date       `json:"balances_as_of"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	Version      int64      `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LoanFromDomain converts domain loan to response.
func LoanFromDomain(l *domain.Loan) *LoanResponse {
	return &LoanResponse{
		ID:                   l.ID,
		CompanyID:            l.CompanyID,
		Identifier:           l.Identifier,
		Status:               string(l.Status),
		PaymentStatus:        string(l.PaymentStatus),
		Amount:               l.Amount,
		OriginationDate:      NewDate(l.OriginationDate),
		MaturityDate:         NewDate(l.MaturityDate),
		AdjustedMaturityDate: NewDate(l.AdjustedMaturityDate),
		LoanBalance:          BalanceFromDomain(l.Outstanding),
		BalancesAsOf:         NewDate(l.BalancesAsOf),
		ClosedAt:             l.ClosedAt,
		Version:              l.Version,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
}

// LoansFromDomain converts domain loans to responses.
func LoansFromDomain(loans []*domain.Loan) []*LoanResponse {
	result := make([]*LoanResponse, len(loans))
	for i, l := range loans {
		result[i] = LoanFromDomain(l)
	}
	return result
}

// LoanStatementResponse is a loan projected to a date.
type LoanStatementResponse struct {
	Loan              *LoanResponse   `json:"loan"`
	AsOf              Date            `json:"as_of"`
	DaysPastDue       int             `json:"days_past_due"`
	LateFeeMultiplier decimal.Decimal `json:"late_fee_multiplier"`
	Projected         LoanBalance     `json:"projected"`
}

// LoanStatementFromUseCase converts a loan statement.
func LoanStatementFromUseCase(s *usecase.LoanStatement) *LoanStatementResponse {
	return &LoanStatementResponse{
		Loan:              LoanFromDomain(s.Loan),
		AsOf:              NewDate(s.AsOf),
		DaysPastDue:       s.DaysPastDue,
		LateFeeMultiplier: s.LateFeeMultiplier,
		Projected:         BalanceFromDomain(s.Projected),
	}
}

// ItemsCoveredFromDomain converts domain coverage.
func ItemsCoveredFromDomain(i domain.ItemsCovered) ItemsCovered {
	ids := i.LoanIDs
	if ids == nil {
		ids = []string{}
	}
	return ItemsCovered{
		LoanIDs:                     ids,
		ToAccountFees:               i.ToAccountFees,
		RequestedToAccountFees:      i.RequestedToAccountFees,
		RequestedFromHoldingAccount: i.RequestedFromHoldingAccount,
	}
}

// PaymentResponse represents a repayment.
type PaymentResponse struct {
	ID                   string          `json:"id"`
	CompanyID            string          `json:"company_id"`
	Method               string          `json:"method"`
	State                string          `json:"state"`
	RequestedAmount      decimal.Decimal `json:"requested_amount"`
	RequestedPaymentDate Date            `json:"requested_payment_date"`
	Amount               decimal.Decimal `json:"amount"`
	DepositDate          Date            `json:"deposit_date"`
	SettlementDate       Date            `json:"settlement_date"`
	ItemsCovered         ItemsCovered    `json:"items_covered"`
	SubmittedByUserID    string          `json:"submitted_by_user_id,omitempty"`
	SettledByUserID      string          `json:"settled_by_user_id,omitempty"`
	SubmittedAt          time.Time       `json:"submitted_at"`
	SettledAt            *time.Time      `json:"settled_at,omitempty"`
}

// PaymentFromDomain converts domain payment to response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:                   p.ID,
		CompanyID:            p.CompanyID,
		Method:               string(p.Method),
		State:                string(p.State),
		RequestedAmount:      p.RequestedAmount,
		RequestedPaymentDate: NewDate(p.RequestedPaymentDate),
		Amount:               p.Amount,
		DepositDate:          NewDate(p.DepositDate),
		SettlementDate:       NewDate(p.SettlementDate),
		ItemsCovered:         ItemsCoveredFromDomain(p.ItemsCovered),
		SubmittedByUserID:    p.SubmittedByUserID,
		SettledByUserID:      p.SettledByUserID,
		SubmittedAt:          p.SubmittedAt,
		SettledAt:            p.SettledAt,
	}
}

// TransactionResponse is a persisted movement of a settled payment.
type TransactionResponse struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	CompanyID string `json:"company_id"`
	LoanID    string `json:"loan_id,omitempty"`
	Type      string `json:"type"`
	Transaction
	EffectiveDate   Date      `json:"effective_date"`
	CreatedByUserID string    `json:"created_by_user_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = &TransactionResponse{
			ID:              t.ID,
			PaymentID:       t.PaymentID,
			CompanyID:       t.CompanyID,
			LoanID:          t.LoanID,
			Type:            string(t.Type),
			Transaction:     AllocationFromDomain(t.Allocation),
			EffectiveDate:   NewDate(t.EffectiveDate),
			CreatedByUserID: t.CreatedByUserID,
			CreatedAt:       t.CreatedAt,
		}
	}
	return result
}

// LoanBeforeAfterPayment is one loan's preview around a repayment.
type LoanBeforeAfterPayment struct {
	LoanID            string      `json:"loan_id"`
	LoanIdentifier    string      `json:"loan_identifier"`
	BeforeLoanBalance LoanBalance `json:"before_loan_balance"`
	AfterLoanBalance  LoanBalance `json:"after_loan_balance"`
	Transaction       Transaction `json:"transaction"`
}

// EffectResponse is a repayment preview.
type EffectResponse struct {
	PaymentOption            string                   `json:"payment_option"`
	Amount                   decimal.Decimal          `json:"amount"`
	SettlementDate           Date                     `json:"settlement_date"`
	PayableAmountPrincipal   decimal.Decimal          `json:"payable_amount_principal"`
	PayableAmountInterest    decimal.Decimal          `json:"payable_amount_interest"`
	PayableAmountFees        decimal.Decimal          `json:"payable_amount_fees"`
	AmountToAccountFees      decimal.Decimal          `json:"amount_to_account_fees"`
	AmountFromHoldingAccount decimal.Decimal          `json:"amount_from_holding_account"`
	AmountLeftover           decimal.Decimal          `json:"amount_leftover"`
	LoansToShow              []LoanBeforeAfterPayment `json:"loans_to_show"`
}

// EffectFromDomain converts a computed effect. A nil effect yields nil.
func EffectFromDomain(e *domain.RepaymentEffect) *EffectResponse {
	if e == nil {
		return nil
	}
	loans := make([]LoanBeforeAfterPayment, len(e.LoansToShow))
	for i, l := range e.LoansToShow {
		loans[i] = LoanBeforeAfterPayment{
			LoanID:            l.LoanID,
			LoanIdentifier:    l.LoanIdentifier,
			BeforeLoanBalance: BalanceFromDomain(l.BeforeLoanBalance),
			AfterLoanBalance:  BalanceFromDomain(l.AfterLoanBalance),
			Transaction:       AllocationFromDomain(l.Transaction),
		}
	}
	return &EffectResponse{
		PaymentOption:            string(e.PaymentOption),
		Amount:                   e.Amount,
		SettlementDate:           NewDate(e.SettlementDate),
		PayableAmountPrincipal:   e.PayableAmountPrincipal,
		PayableAmountInterest:    e.PayableAmountInterest,
		PayableAmountFees:        e.PayableAmountFees,
		AmountToAccountFees:      e.AmountToAccountFees,
		AmountFromHoldingAccount: e.AmountFromHoldingAccount,
		AmountLeftover:           e.AmountLeftover,
		LoansToShow:              loans,
	}
}

// StatusResponse is a backend call outcome.
type StatusResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg,omitempty"`
}

// StatusFromDomain converts a status response.
func StatusFromDomain(s domain.StatusResponse) StatusResponse {
	return StatusResponse{Status: string(s.Status), Msg: s.Msg}
}

// EffectStatusResponse carries a status and, on success, the effect fields.
type EffectStatusResponse struct {
	StatusResponse
	*EffectResponse
}

// EffectStatusFromDomain converts an effect response.
func EffectStatusFromDomain(r *domain.EffectResponse) EffectStatusResponse {
	return EffectStatusResponse{
		StatusResponse: StatusFromDomain(r.StatusResponse),
		EffectResponse: EffectFromDomain(r.Effect),
	}
}

// BorrowingBaseResponse is a calculated borrowing base.
type BorrowingBaseResponse struct {
	BorrowingBase          decimal.Decimal      `json:"borrowing_base"`
	BorrowingBaseFormatted string               `json:"borrowing_base_formatted"`
	Weights                BorrowingBaseWeights `json:"weights"`
	VisibleFields          []string             `json:"visible_fields"`
}

// BorrowingBaseFromUseCase converts a calculator result.
func BorrowingBaseFromUseCase(r *usecase.BorrowingBaseResult) *BorrowingBaseResponse {
	fields := make([]string, len(r.VisibleFields))
	for i, f := range r.VisibleFields {
		fields[i] = string(f)
	}
	return &BorrowingBaseResponse{
		BorrowingBase:          r.BorrowingBase,
		BorrowingBaseFormatted: domain.FormatCurrency(r.BorrowingBase),
		Weights:                WeightsFromDomain(r.Weights),
		VisibleFields:          fields,
	}
}

// LateFeeResponse is a resolved late fee multiplier.
type LateFeeResponse struct {
	Fee              decimal.Decimal   `json:"fee"`
	LateFeeStructure map[string]string `json:"late_fee_structure"`
}

// LateFeeFromUseCase converts a late fee result.
func LateFeeFromUseCase(r *usecase.LateFeeResult) *LateFeeResponse {
	return &LateFeeResponse{
		Fee:              r.Fee,
		LateFeeStructure: r.Schedule.Structure(),
	}
}

// EbbaApplicationResponse is a borrowing base certification.
type EbbaApplicationResponse struct {
	ID                      string              `json:"id"`
	CompanyID               string              `json:"company_id"`
	Status                  string              `json:"status"`
	ApplicationDate         Date                `json:"application_date"`
	Inputs                  BorrowingBaseInputs `json:"inputs"`
	CalculatedBorrowingBase decimal.Decimal     `json:"calculated_borrowing_base"`
	ExpiresDate             Date                `json:"expires_date"`
	RejectionNote           string              `json:"rejection_note,omitempty"`
	SubmittedByUserID       string              `json:"submitted_by_user_id,omitempty"`
	ReviewedByUserID        string              `json:"reviewed_by_user_id,omitempty"`
	SubmittedAt             *time.Time          `json:"submitted_at,omitempty"`
	ApprovedAt              *time.Time          `json:"approved_at,omitempty"`
	RejectedAt              *time.Time          `json:"rejected_at,omitempty"`
	CreatedAt               time.Time           `json:"created_at"`
	UpdatedAt               time.Time           `json:"updated_at"`
}

// EbbaApplicationFromDomain converts domain application to response.
func EbbaApplicationFromDomain(a *domain.EbbaApplication) *EbbaApplicationResponse {
	return &EbbaApplicationResponse{
		ID:                      a.ID,
		CompanyID:               a.CompanyID,
		Status:                  string(a.Status),
		ApplicationDate:         NewDate(a.ApplicationDate),
		Inputs:                  InputsFromDomain(a.Inputs),
		CalculatedBorrowingBase: a.CalculatedBorrowingBase,
		ExpiresDate:             NewDate(a.ExpiresDate),
		RejectionNote:           a.RejectionNote,
		SubmittedByUserID:       a.SubmittedByUserID,
		ReviewedByUserID:        a.ReviewedByUserID,
		SubmittedAt:             a.SubmittedAt,
		ApprovedAt:              a.ApprovedAt,
		RejectedAt:              a.RejectedAt,
		CreatedAt:               a.CreatedAt,
		UpdatedAt:               a.UpdatedAt,
	}
}

// EbbaApplicationsFromDomain converts domain applications to responses.
func EbbaApplicationsFromDomain(apps []*domain.EbbaApplication) []*EbbaApplicationResponse {
	result := make([]*EbbaApplicationResponse, len(apps))
	for i, a := range apps {
		result[i] = EbbaApplicationFromDomain(a)
	}
	return result
}

// SettlementSessionResponse is the state of a settle-repayment wizard.
type SettlementSessionResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	PaymentID      string          `json:"payment_id"`
	Step           string          `json:"step"`
	IsLineOfCredit bool            `json:"is_line_of_credit"`
	CanSubmit      bool            `json:"can_submit"`
	Message        string          `json:"message,omitempty"`
	Effect         *EffectResponse `json:"effect,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SettlementSessionFromDomain converts a wizard session.
func SettlementSessionFromDomain(s *domain.SettlementSession) *SettlementSessionResponse {
	return &SettlementSessionResponse{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		PaymentID:      s.PaymentID,
		Step:           string(s.Step),
		IsLineOfCredit: s.IsLineOfCredit,
		CanSubmit:      s.CanSubmit(),
		Message:        s.Message,
		Effect:         EffectFromDomain(s.Effect),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// ReconciliationResultResponse is one balance check.
type ReconciliationResultResponse struct {
	ResourceID        string          `json:"resource_id"`
	Identifier        string          `json:"identifier"`
	RecordedBalance   decimal.Decimal `json:"recorded_balance"`
	CalculatedBalance decimal.Decimal `json:"calculated_balance"`
	Difference        decimal.Decimal `json:"difference"`
	IsReconciled      bool            `json:"is_reconciled"`
	LastChecked       time.Time       `json:"last_checked"`
}

// ReconciliationResultFromUseCase converts a reconciliation result.
func ReconciliationResultFromUseCase(r *usecase.ReconciliationResult) *ReconciliationResultResponse {
	if r == nil {
		return nil
	}
	return &ReconciliationResultResponse{
		ResourceID:        r.ResourceID,
		Identifier:        r.Identifier,
		RecordedBalance:   r.RecordedBalance,
		CalculatedBalance: r.CalculatedBalance,
		Difference:        r.Difference,
		IsReconciled:      r.IsReconciled,
		LastChecked:       r.LastChecked,
	}
}

// ReconciliationReportResponse summarises a company's reconciliation.
type ReconciliationReportResponse struct {
	CompanyID       string                          `json:"company_id"`
	TotalLoans      int                             `json:"total_loans"`
	ReconciledLoans int                             `json:"reconciled_loans"`
	IsReconciled    bool                            `json:"is_reconciled"`
	Discrepancies   []*ReconciliationResultResponse `json:"discrepancies"`
	HoldingAccount  *ReconciliationResultResponse   `json:"holding_account"`
	CheckedAt       time.Time                       `json:"checked_at"`
}

// ReconciliationReportFromUseCase converts a reconciliation report.
func ReconciliationReportFromUseCase(r *usecase.ReconciliationReport) *ReconciliationReportResponse {
	discrepancies := make([]*ReconciliationResultResponse, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		discrepancies[i] = ReconciliationResultFromUseCase(d)
	}
	return &ReconciliationReportResponse{
		CompanyID:       r.CompanyID,
		TotalLoans:      r.TotalLoans,
		ReconciledLoans: r.ReconciledLoans,
		IsReconciled:    r.IsReconciled(),
		Discrepancies:   discrepancies,
		HoldingAccount:  ReconciliationResultFromUseCase(r.HoldingAccount),
		CheckedAt:       r.CheckedAt,
	}
}

// AuditLogResponse is one audit record.
type AuditLogResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	RequestID    string         `json:"request_id,omitempty"`
	BeforeState  map[string]any `json:"before_state,omitempty"`
	AfterState   map[string]any `json:"after_state,omitempty"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// AuditLogsFromDomain converts audit logs to responses.
func AuditLogsFromDomain(logs []*domain.AuditLog) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(logs))
	for i, l := range logs {
		result[i] = &AuditLogResponse{
			ID:           l.ID,
			UserID:       l.UserID,
			Action:       string(l.Action),
			ResourceType: l.ResourceType,
			ResourceID:   l.ResourceID,
			RequestID:    l.RequestID,
			BeforeState:  l.BeforeState,
			AfterState:   l.AfterState,
			Status:       string(l.Status),
			ErrorMessage: l.ErrorMessage,
			CreatedAt:    l.CreatedAt,
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ListResponse wraps a page of items.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
