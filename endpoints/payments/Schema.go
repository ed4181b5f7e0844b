package payments

import (
	"fmt"
	"unicode/utf8"

	"github.com/nutanixdev/payments-api/iso4217"
)

const maxDescriptionLen = 200

// PaymentCreate is the intake candidate: the raw fields of a payment
// before validation and storage. The form tags let the browser form
// bind into the same shape the JSON endpoint uses.
type PaymentCreate struct {
	Payee       string  `json:"payee" form:"payee"`
	Amount      float64 `json:"amount" form:"amount"`
	Currency    string  `json:"currency" form:"currency"`
	Description *string `json:"description" form:"description"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failing field of a candidate, not
// just the first one.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payment validation failed on %d field(s)", len(e.Fields))
}

// Validate checks the candidate and returns nil or the full list of
// field errors. The currency code is validated but never rewritten;
// it is stored exactly as submitted.
func (p *PaymentCreate) Validate() *ValidationError {
	var fields []FieldError

	if p.Payee == "" {
		fields = append(fields, FieldError{Field: "payee", Message: "must not be empty"})
	}

	if p.Amount <= 0 {
		fields = append(fields, FieldError{Field: "amount", Message: "must be greater than zero"})
	}

	if err := iso4217.Validate(p.Currency); err != nil {
		fields = append(fields, FieldError{Field: "currency", Message: err.Error()})
	}

	// character limit, not bytes: multibyte descriptions count per rune
	if p.Description != nil && utf8.RuneCountInString(*p.Description) > maxDescriptionLen {
		fields = append(fields, FieldError{
			Field:   "description",
			Message: fmt.Sprintf("must be at most %d characters", maxDescriptionLen),
		})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
