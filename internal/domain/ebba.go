package domain

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// EbbaApplicationStatus is the review lifecycle of a borrowing base
// certification.
type EbbaApplicationStatus string

const (
	EbbaStatusDrafted   EbbaApplicationStatus = "drafted"
	EbbaStatusSubmitted EbbaApplicationStatus = "submitted"
	EbbaStatusApproved  EbbaApplicationStatus = "approved"
	EbbaStatusRejected  EbbaApplicationStatus = "rejected"
)

// ebbaExpirationGraceDays is added after the end of the month following the
// application date.
const ebbaExpirationGraceDays = 15

// EbbaApplication is a borrowing base certification submitted by a company.
type EbbaApplication struct {
	ID                      string
	CompanyID               string
	Status                  EbbaApplicationStatus
	ApplicationDate         civil.Date
	Inputs                  BorrowingBaseInputs
	CalculatedBorrowingBase decimal.Decimal
	ExpiresDate             civil.Date
	RejectionNote           string
	SubmittedByUserID       string
	ReviewedByUserID        string
	SubmittedAt             *time.Time
	ApprovedAt              *time.Time
	RejectedAt              *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// EbbaExpirationDate returns when a certification dated applicationDate
// expires: fifteen days after the end of the following month.
func EbbaExpirationDate(applicationDate civil.Date) civil.Date {
	return EndOfMonth(AddMonths(applicationDate, 1)).AddDays(ebbaExpirationGraceDays)
}

// Recalculate derives the borrowing base and expiry from the inputs.
func (a *EbbaApplication) Recalculate(weights BorrowingBaseWeights) {
	a.CalculatedBorrowingBase = RoundCents(CalculateBorrowingBase(a.Inputs, weights))
	a.ExpiresDate = EbbaExpirationDate(a.ApplicationDate)
}

// IsExpired reports whether the certification has lapsed on asOf.
func (a *EbbaApplication) IsExpired(asOf civil.Date) bool {
	return asOf.After(a.ExpiresDate)
}

func (a *EbbaApplication) transition(from, to EbbaApplicationStatus) error {
	if a.Status != from {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, a.Status, to)
	}
	a.Status = to
	return nil
}

// Submit moves a draft to Submitted.
func (a *EbbaApplication) Submit(userID string, now time.Time) error {
	if err := a.transition(EbbaStatusDrafted, EbbaStatusSubmitted); err != nil {
		return err
	}
	a.SubmittedByUserID = userID
	a.SubmittedAt = &now
	a.UpdatedAt = now
	return nil
}

// Approve moves a submitted certification to Approved.
func (a *EbbaApplication) Approve(reviewerID string, now time.Time) error {
	if err := a.transition(EbbaStatusSubmitted, EbbaStatusApproved); err != nil {
		return err
	}
	a.ReviewedByUserID = reviewerID
	a.ApprovedAt = &now
	a.UpdatedAt = now
	return nil
}

// Reject moves a submitted certification to Rejected with a note.
func (a *EbbaApplication) Reject(reviewerID, note string, now time.Time) error {
	if strings.TrimSpace(note) == "" {
		return ErrRejectionNoteRequired
	}
	if err := ValidateNote(note); err != nil {
		return err
	}
	if err := a.transition(EbbaStatusSubmitted, EbbaStatusRejected); err != nil {
		return err
	}
	a.ReviewedByUserID = reviewerID
	a.RejectionNote = note
	a.RejectedAt = &now
	a.UpdatedAt = now
	return nil
}
