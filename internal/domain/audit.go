package domain

import (
	"encoding/json"
	"time"
)

// AuditLog records a privileged action for compliance review.
type AuditLog struct {
	ID           string
	UserID       string
	Action       AuditAction
	ResourceType string
	ResourceID   string
	RequestID    string
	BeforeState  JSON
	AfterState   JSON
	Status       AuditStatus
	ErrorMessage string
	CreatedAt    time.Time
}

// JSON is a type alias for JSON data
type JSON map[string]any

// AuditAction represents different types of auditable actions
type AuditAction string

const (
	AuditActionRepaymentSettle    AuditAction = "repayment.settle"
	AuditActionSettlementOverride AuditAction = "settlement.override"
	AuditActionEbbaApprove        AuditAction = "ebba_application.approve"
	AuditActionEbbaReject         AuditAction = "ebba_application.reject"
	AuditActionContractUpdate     AuditAction = "contract.update"
)

// AuditStatus represents the status of an audited action
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailure AuditStatus = "failure"
)

// MarshalState converts a domain object to JSON for audit logging
func MarshalState(v any) JSON {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return JSON{"error": "failed to marshal state"}
	}

	var result JSON
	if err := json.Unmarshal(data, &result); err != nil {
		return JSON{"error": "failed to unmarshal state"}
	}

	return result
}

// AuditFilter defines filters for querying audit logs
type AuditFilter struct {
	UserID       string
	Action       AuditAction
	ResourceType string
	ResourceID   string
	Limit        int
	Offset       int
}
