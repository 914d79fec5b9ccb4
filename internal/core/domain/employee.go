package domain

import (
	"errors"
	"time"
)

// EmploymentStatus is the lifecycle state of an employee record.
type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "active"
	EmploymentOnLeave    EmploymentStatus = "on_leave"
	EmploymentResigned   EmploymentStatus = "resigned"
	EmploymentTerminated EmploymentStatus = "terminated"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrEmployeeExists = errors.New("employee already exists")
var ErrInvalidEmployee = errors.New("employee number, work email and name are required")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// Employee is the system-of-record for a person's HR attributes.
//
// Fields addressable through the change-request workflow are registered in
// employee_fields.go; the remaining fields (employment data, audit
// timestamps) are only mutated by privileged operations.
type Employee struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	EmployeeNumber string `json:"employee_number" bson:"employee_number"`
	WorkEmail      string `json:"work_email" bson:"work_email"`

	// personal_details
	FirstName     string `json:"first_name" bson:"first_name"`
	LastName      string `json:"last_name" bson:"last_name"`
	DateOfBirth   string `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty" bson:"marital_status,omitempty"`

	// address
	AddressLine string `json:"address_line,omitempty" bson:"address_line,omitempty"`
	City        string `json:"city,omitempty" bson:"city,omitempty"`
	State       string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode     string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	Country     string `json:"country,omitempty" bson:"country,omitempty"`

	// contact
	Phone         string `json:"phone,omitempty" bson:"phone,omitempty"`
	PersonalEmail string `json:"personal_email,omitempty" bson:"personal_email,omitempty"`

	// dependents
	Dependents string `json:"dependents,omitempty" bson:"dependents,omitempty"`

	// emergency_contacts
	EmergencyContactName     string `json:"emergency_contact_name,omitempty" bson:"emergency_contact_name,omitempty"`
	EmergencyContactPhone    string `json:"emergency_contact_phone,omitempty" bson:"emergency_contact_phone,omitempty"`
	EmergencyContactRelation string `json:"emergency_contact_relation,omitempty" bson:"emergency_contact_relation,omitempty"`

	// bank_details
	BankName          string `json:"bank_name,omitempty" bson:"bank_name,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty" bson:"bank_account_number,omitempty"`

	Department string           `json:"department,omitempty" bson:"department,omitempty"`
	Position   string           `json:"position,omitempty" bson:"position,omitempty"`
	ManagerID  string           `json:"manager_id,omitempty" bson:"manager_id,omitempty"`
	HireDate   time.Time        `json:"hire_date" bson:"hire_date"`
	Status     EmploymentStatus `json:"status" bson:"status"`
	CreatedAt  time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" bson:"updated_at"`
}
