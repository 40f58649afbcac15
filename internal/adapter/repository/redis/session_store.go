package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
)

// SessionStore implements usecase.SettlementSessionStore using Redis.
// Every save refreshes the TTL, so abandoned wizards expire on their own.
type SessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "goloan:settlement:",
		ttl:    ttl,
	}
}

// Save stores session, assigning an ID on first save.
func (s *SessionStore) Save(ctx context.Context, session *domain.SettlementSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	data, err := json.Marshal(newSessionRecord(session))
	if err != nil {
		return fmt.Errorf("failed to encode settlement session: %w", err)
	}

	return s.client.Set(ctx, s.prefix+session.ID, data, s.ttl).Err()
}

// Get loads a session by ID.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.SettlementSession, error) {
	data, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSettlementSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode settlement session: %w", err)
	}

	return record.toDomain()
}

// Delete removes a session.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}

// sessionRecord is the stored form of a session. civil.Date does not survive
// a JSON round trip when unset, so dates are kept as strings.
type sessionRecord struct {
	ID             string                `json:"id"`
	CompanyID      string                `json:"company_id"`
	PaymentID      string                `json:"payment_id"`
	UserID         string                `json:"user_id"`
	IsLineOfCredit bool                  `json:"is_line_of_credit"`
	Step           domain.SettlementStep `json:"step"`
	Request        requestRecord         `json:"request"`
	Effect         *effectRecord         `json:"effect,omitempty"`
	Message        string                `json:"message,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type requestRecord struct {
	CompanyID               string               `json:"company_id"`
	PaymentOption           domain.PaymentOption `json:"payment_option"`
	Amount                  decimal.Decimal      `json:"amount"`
	DepositDate             string               `json:"deposit_date,omitempty"`
	SettlementDate          string               `json:"settlement_date,omitempty"`
	ItemsCovered            domain.ItemsCovered  `json:"items_covered"`
	ShouldPayPrincipalFirst bool                 `json:"should_pay_principal_first"`
}

type effectRecord struct {
	PaymentOption            domain.PaymentOption            `json:"payment_option"`
	Amount                   decimal.Decimal                 `json:"amount"`
	SettlementDate           string                          `json:"settlement_date,omitempty"`
	PayableAmountPrincipal   decimal.Decimal                 `json:"payable_amount_principal"`
	PayableAmountInterest    decimal.Decimal                 `json:"payable_amount_interest"`
	PayableAmountFees        decimal.Decimal                 `json:"payable_amount_fees"`
	AmountToAccountFees      decimal.Decimal                 `json:"amount_to_account_fees"`
	AmountFromHoldingAccount decimal.Decimal                 `json:"amount_from_holding_account"`
	AmountLeftover           decimal.Decimal                 `json:"amount_leftover"`
	LoansToShow              []domain.LoanBeforeAfterPayment `json:"loans_to_show"`
}

func newSessionRecord(s *domain.SettlementSession) sessionRecord {
	record := sessionRecord{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		PaymentID:      s.PaymentID,
		UserID:         s.UserID,
		IsLineOfCredit: s.IsLineOfCredit,
		Step:           s.Step,
		Request: requestRecord{
			CompanyID:               s.Request.CompanyID,
			PaymentOption:           s.Request.PaymentOption,
			Amount:                  s.Request.Amount,
			DepositDate:             domain.FormatOptionalDate(s.Request.DepositDate),
			SettlementDate:          domain.FormatOptionalDate(s.Request.SettlementDate),
			ItemsCovered:            s.Request.ItemsCovered,
			ShouldPayPrincipalFirst: s.Request.ShouldPayPrincipalFirst,
		},
		Message:   s.Message,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if e := s.Effect; e != nil {
		record.Effect = &effectRecord{
			PaymentOption:            e.PaymentOption,
			Amount:                   e.Amount,
			SettlementDate:           domain.FormatOptionalDate(e.SettlementDate),
			PayableAmountPrincipal:   e.PayableAmountPrincipal,
			PayableAmountInterest:    e.PayableAmountInterest,
			PayableAmountFees:        e.PayableAmountFees,
			AmountToAccountFees:      e.AmountToAccountFees,
			AmountFromHoldingAccount: e.AmountFromHoldingAccount,
			AmountLeftover:           e.AmountLeftover,
			LoansToShow:              e.LoansToShow,
		}
	}

	return record
}

func (r sessionRecord) toDomain() (*domain.SettlementSession, error) {
	deposit, err := domain.ParseOptionalDate(r.Request.DepositDate)
	if err != nil {
		return nil, err
	}
	settlement, err := domain.ParseOptionalDate(r.Request.SettlementDate)
	if err != nil {
		return nil, err
	}

	session := &domain.SettlementSession{
		ID:             r.ID,
		CompanyID:      r.CompanyID,
		PaymentID:      r.PaymentID,
		UserID:         r.UserID,
		IsLineOfCredit: r.IsLineOfCredit,
		Step:           r.Step,
		Request: domain.RepaymentRequest{
			CompanyID:               r.Request.CompanyID,
			PaymentOption:           r.Request.PaymentOption,
			Amount:                  r.Request.Amount,
			DepositDate:             deposit,
			SettlementDate:          settlement,
			ItemsCovered:            r.Request.ItemsCovered,
			ShouldPayPrincipalFirst: r.Request.ShouldPayPrincipalFirst,
		},
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if e := r.Effect; e != nil {
		effectDate, err := domain.ParseOptionalDate(e.SettlementDate)
		if err != nil {
			return nil, err
		}
		session.Effect = &domain.RepaymentEffect{
			PaymentOption:            e.PaymentOption,
			Amount:                   e.Amount,
			SettlementDate:           effectDate,
			PayableAmountPrincipal:   e.PayableAmountPrincipal,
			PayableAmountInterest:    e.PayableAmountInterest,
			PayableAmountFees:        e.PayableAmountFees,
			AmountToAccountFees:      e.AmountToAccountFees,
			AmountFromHoldingAccount: e.AmountFromHoldingAccount,
			AmountLeftover:           e.AmountLeftover,
			LoansToShow:              e.LoansToShow,
		}
	}

	return session, nil
}
