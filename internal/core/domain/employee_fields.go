package domain

import (
	"fmt"
	"time"
)

// ChangeCategory groups employee fields for the change-request workflow.
type ChangeCategory string

const (
	CategoryPersonalDetails   ChangeCategory = "personal_details"
	CategoryAddress           ChangeCategory = "address"
	CategoryContact           ChangeCategory = "contact"
	CategoryDependents        ChangeCategory = "dependents"
	CategoryEmergencyContacts ChangeCategory = "emergency_contacts"
	CategoryBankDetails       ChangeCategory = "bank_details"
)

// FieldSpec describes one field of the employee record addressable through
// the change-request workflow. Name is the public API identifier, Column
// the storage identifier. The registry below is the single source of truth
// for both the self-service allow-list and the apply-time setter dispatch:
// no column name is ever interpolated from caller input.
type FieldSpec struct {
	Name        string
	Column      string
	Category    ChangeCategory
	SelfService bool

	get func(*Employee) string
	set func(*Employee, string) error
}

// Get reads the field's current value as text.
func (f FieldSpec) Get(e *Employee) string { return f.get(e) }

// Set validates and writes value into the struct field.
func (f FieldSpec) Set(e *Employee, value string) error { return f.set(e, value) }

func textField(name, column string, cat ChangeCategory, selfService bool, p func(*Employee) *string) FieldSpec {
	return FieldSpec{
		Name:        name,
		Column:      column,
		Category:    cat,
		SelfService: selfService,
		get:         func(e *Employee) string { return *p(e) },
		set: func(e *Employee, v string) error {
			*p(e) = v
			return nil
		},
	}
}

func dateOnlyField(name, column string, cat ChangeCategory, selfService bool, p func(*Employee) *string) FieldSpec {
	f := textField(name, column, cat, selfService, p)
	f.set = func(e *Employee, v string) error {
		if v != "" {
			if _, err := time.Parse("2006-01-02", v); err != nil {
				return fmt.Errorf("value %q is not a valid date (want YYYY-MM-DD)", v)
			}
		}
		*p(e) = v
		return nil
	}
	return f
}

// employeeFields is the exhaustive field registry. Order is the canonical
// display order for API consumers.
var employeeFields = []FieldSpec{
	textField("firstName", "first_name", CategoryPersonalDetails, true, func(e *Employee) *string { return &e.FirstName }),
	textField("lastName", "last_name", CategoryPersonalDetails, true, func(e *Employee) *string { return &e.LastName }),
	dateOnlyField("dateOfBirth", "date_of_birth", CategoryPersonalDetails, true, func(e *Employee) *string { return &e.DateOfBirth }),
	textField("maritalStatus", "marital_status", CategoryPersonalDetails, true, func(e *Employee) *string { return &e.MaritalStatus }),

	textField("addressLine", "address_line", CategoryAddress, true, func(e *Employee) *string { return &e.AddressLine }),
	textField("city", "city", CategoryAddress, true, func(e *Employee) *string { return &e.City }),
	textField("state", "state", CategoryAddress, true, func(e *Employee) *string { return &e.State }),
	textField("zipCode", "zip_code", CategoryAddress, true, func(e *Employee) *string { return &e.ZipCode }),
	textField("country", "country", CategoryAddress, true, func(e *Employee) *string { return &e.Country }),

	textField("phone", "phone", CategoryContact, true, func(e *Employee) *string { return &e.Phone }),
	textField("personalEmail", "personal_email", CategoryContact, true, func(e *Employee) *string { return &e.PersonalEmail }),

	textField("dependents", "dependents", CategoryDependents, true, func(e *Employee) *string { return &e.Dependents }),

	textField("emergencyContactName", "emergency_contact_name", CategoryEmergencyContacts, true, func(e *Employee) *string { return &e.EmergencyContactName }),
	textField("emergencyContactPhone", "emergency_contact_phone", CategoryEmergencyContacts, true, func(e *Employee) *string { return &e.EmergencyContactPhone }),
	textField("emergencyContactRelation", "emergency_contact_relation", CategoryEmergencyContacts, true, func(e *Employee) *string { return &e.EmergencyContactRelation }),

	// Bank details require the privileged HR workflow and are deliberately
	// excluded from self-service.
	textField("bankName", "bank_name", CategoryBankDetails, false, func(e *Employee) *string { return &e.BankName }),
	textField("bankAccountNumber", "bank_account_number", CategoryBankDetails, false, func(e *Employee) *string { return &e.BankAccountNumber }),
}

// fieldsByName indexes the registry by both public name and storage column.
var fieldsByName = func() map[string]FieldSpec {
	idx := make(map[string]FieldSpec, 2*len(employeeFields))
	for _, f := range employeeFields {
		if _, dup := idx[f.Name]; dup {
			panic(fmt.Sprintf("duplicate employee field name %q", f.Name))
		}
		idx[f.Name] = f
		if f.Column != f.Name {
			if _, dup := idx[f.Column]; dup {
				panic(fmt.Sprintf("duplicate employee field column %q", f.Column))
			}
			idx[f.Column] = f
		}
	}
	return idx
}()

// LookupField resolves a public field name or storage column to its spec.
func LookupField(name string) (FieldSpec, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// EditableFields returns the self-service allow-list in canonical order.
func EditableFields() []FieldSpec {
	out := make([]FieldSpec, 0, len(employeeFields))
	for _, f := range employeeFields {
		if f.SelfService {
			out = append(out, f)
		}
	}
	return out
}
