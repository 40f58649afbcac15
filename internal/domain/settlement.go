package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SettlementStep is a state of the settle-repayment wizard.
type SettlementStep string

const (
	StepSelectLoans   SettlementStep = "select_loans"
	StepConfirmEffect SettlementStep = "confirm_effect"
	StepSettled       SettlementStep = "settled"
)

// SettlementSession is the state of one bank user settling one payment.
// Steps move SelectLoans -> ConfirmEffect -> Settled, with ConfirmEffect ->
// SelectLoans allowed. Forward moves happen only on OK responses.
type SettlementSession struct {
	ID             string
	CompanyID      string
	PaymentID      string
	UserID         string
	IsLineOfCredit bool
	Step           SettlementStep
	Request        RepaymentRequest
	Effect         *RepaymentEffect
	Message        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewSettlementSession starts a session on the SelectLoans step.
func NewSettlementSession(companyID, paymentID, userID string, isLineOfCredit bool, now time.Time) *SettlementSession {
	return &SettlementSession{
		CompanyID:      companyID,
		PaymentID:      paymentID,
		UserID:         userID,
		IsLineOfCredit: isLineOfCredit,
		Step:           StepSelectLoans,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *SettlementSession) require(step SettlementStep) error {
	if s.Step != step {
		return fmt.Errorf("%w: session is at %s, expected %s", ErrInvalidStepTransition, s.Step, step)
	}
	return nil
}

// ApplyEffectResponse records the effect computed for req. An OK response
// moves to ConfirmEffect; anything else stays on SelectLoans with the message.
func (s *SettlementSession) ApplyEffectResponse(req RepaymentRequest, resp EffectResponse, now time.Time) error {
	if err := s.require(StepSelectLoans); err != nil {
		return err
	}

	s.Request = req
	s.UpdatedAt = now

	if !resp.OK() || resp.Effect == nil {
		s.Effect = nil
		s.Message = resp.Msg
		return nil
	}

	s.Effect = resp.Effect
	s.Message = ""
	s.Step = StepConfirmEffect
	return nil
}

// Back returns from ConfirmEffect to SelectLoans and discards the effect.
func (s *SettlementSession) Back(now time.Time) error {
	if err := s.require(StepConfirmEffect); err != nil {
		return err
	}
	s.Step = StepSelectLoans
	s.Effect = nil
	s.Message = ""
	s.UpdatedAt = now
	return nil
}

// Override edits one transaction component of the previewed effect.
func (s *SettlementSession) Override(loanID string, field AllocationField, value decimal.Decimal, now time.Time) error {
	if err := s.require(StepConfirmEffect); err != nil {
		return err
	}
	if s.Effect == nil {
		return ErrRepaymentEffectNotAvailable
	}
	if err := s.Effect.SetLoanBeforeAfterPayment(loanID, field, value); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

// CanSubmit reports whether the session may call settlement.
func (s *SettlementSession) CanSubmit() bool {
	return s.Step == StepConfirmEffect && s.Effect != nil
}

// ApplySettleResponse moves to Settled on OK; otherwise the session stays on
// ConfirmEffect with the message.
func (s *SettlementSession) ApplySettleResponse(resp StatusResponse, now time.Time) error {
	if err := s.require(StepConfirmEffect); err != nil {
		return err
	}
	s.UpdatedAt = now
	if !resp.OK() {
		s.Message = resp.Msg
		return nil
	}
	s.Step = StepSettled
	s.Message = ""
	return nil
}
