package domain

import (
	"errors"
)

// User is an authenticated principal. Company users carry the company they
// act for; bank users may act for any company.
type User struct {
	ID        string
	Email     string
	CompanyID string
	Role      Role
}

// Role represents a user's access level
type Role string

const (
	// RoleBankAdmin settles repayments and approves certifications
	RoleBankAdmin Role = "bank_admin"

	// RoleBankReadOnly can view every company but cannot mutate
	RoleBankReadOnly Role = "bank_read_only"

	// RoleCompanyAdmin manages their own company's requests
	RoleCompanyAdmin Role = "company_admin"

	// RoleCompanyUser submits requests for their own company
	RoleCompanyUser Role = "company_user"
)

var validRoles = map[Role]bool{
	RoleBankAdmin:    true,
	RoleBankReadOnly: true,
	RoleCompanyAdmin: true,
	RoleCompanyUser:  true,
}

// IsValid checks if the role is a valid role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// IsBank reports whether the role belongs to bank staff.
func (r Role) IsBank() bool {
	return r == RoleBankAdmin || r == RoleBankReadOnly
}

// CanManage reports whether the role may perform bank-only mutations.
func (r Role) CanManage() bool {
	return r == RoleBankAdmin
}

// CanSubmit reports whether the role may create requests.
func (r Role) CanSubmit() bool {
	return r == RoleBankAdmin || r == RoleCompanyAdmin || r == RoleCompanyUser
}

// CanAccessCompany reports whether the user may see companyID's data.
func (u *User) CanAccessCompany(companyID string) bool {
	if u.Role.IsBank() {
		return true
	}
	return u.CompanyID != "" && u.CompanyID == companyID
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
