package domain

import (
	"errors"
	"testing"
)

func TestLookupField_ByPublicName(t *testing.T) {
	spec, ok := LookupField("firstName")
	if !ok {
		t.Fatal("firstName must resolve")
	}
	if spec.Column != "first_name" {
		t.Errorf("expected column first_name, got %q", spec.Column)
	}
	if spec.Category != CategoryPersonalDetails {
		t.Errorf("expected category personal_details, got %q", spec.Category)
	}
	if !spec.SelfService {
		t.Error("firstName must be self-service editable")
	}
}

func TestLookupField_ByStorageColumn(t *testing.T) {
	byName, _ := LookupField("emergencyContactPhone")
	byColumn, ok := LookupField("emergency_contact_phone")
	if !ok {
		t.Fatal("storage column must resolve")
	}
	if byColumn.Name != byName.Name || byColumn.Column != byName.Column {
		t.Error("name and column lookups must resolve to the same spec")
	}
}

func TestLookupField_Unknown(t *testing.T) {
	for _, name := range []string{"salary", "password_hash", "", "first-name"} {
		if _, ok := LookupField(name); ok {
			t.Errorf("%q must not resolve to a field", name)
		}
	}
}

func TestBankFields_NotSelfService(t *testing.T) {
	for _, name := range []string{"bankName", "bankAccountNumber", "bank_name", "bank_account_number"} {
		spec, ok := LookupField(name)
		if !ok {
			t.Fatalf("%q must be registered", name)
		}
		if spec.SelfService {
			t.Errorf("%q must not be self-service editable", name)
		}
		if spec.Category != CategoryBankDetails {
			t.Errorf("%q must be in bank_details, got %q", name, spec.Category)
		}
	}
}

func TestEditableFields_ExcludesBankDetails(t *testing.T) {
	for _, spec := range EditableFields() {
		if !spec.SelfService {
			t.Errorf("EditableFields returned non-editable %q", spec.Name)
		}
		if spec.Category == CategoryBankDetails {
			t.Errorf("EditableFields must not include bank field %q", spec.Name)
		}
	}
	if len(EditableFields()) != len(employeeFields)-2 {
		t.Errorf("expected all fields but the two bank fields, got %d of %d", len(EditableFields()), len(employeeFields))
	}
}

func TestFieldSpec_GetSetRoundTrip(t *testing.T) {
	e := &Employee{City: "Lahore"}
	spec, _ := LookupField("city")

	if got := spec.Get(e); got != "Lahore" {
		t.Fatalf("expected Lahore, got %q", got)
	}
	if err := spec.Set(e, "Karachi"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if e.City != "Karachi" {
		t.Errorf("expected struct field updated to Karachi, got %q", e.City)
	}
}

func TestFieldSpec_DateOfBirthValidation(t *testing.T) {
	spec, _ := LookupField("dateOfBirth")
	e := &Employee{}

	if err := spec.Set(e, "1990-03-14"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	if e.DateOfBirth != "1990-03-14" {
		t.Errorf("date not written, got %q", e.DateOfBirth)
	}

	for _, bad := range []string{"14/03/1990", "1990-13-01", "yesterday"} {
		if err := spec.Set(e, bad); err == nil {
			t.Errorf("%q must be rejected as a date", bad)
		}
	}
	if e.DateOfBirth != "1990-03-14" {
		t.Error("failed set must leave the previous value intact")
	}

	// Clearing the field is allowed.
	if err := spec.Set(e, ""); err != nil {
		t.Errorf("empty value must clear the date: %v", err)
	}
}

func TestFieldValidationError_HintAndUnwrap(t *testing.T) {
	err := &FieldValidationError{Field: "bankAccountNumber", Err: ErrFieldNotEditable}
	if !errors.Is(err, ErrFieldNotEditable) {
		t.Error("must unwrap to the sentinel")
	}
	if err.Hint() == "" {
		t.Error("non-editable field error must carry a hint")
	}

	unknown := &FieldValidationError{Field: "salary", Err: ErrUnknownField}
	if unknown.Hint() == "" {
		t.Error("unknown field error must carry a hint")
	}
}
