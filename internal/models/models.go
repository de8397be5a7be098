// Package models defines the request and response payloads of the API.
package models

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// User is the payload of POST /api/users. It is never persisted.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateUserRequest is the wire form of User. Pointer fields let an empty
// string count as present while an absent key is still rejected.
type CreateUserRequest struct {
	Username *string `json:"username" validate:"required"`
	Email    *string `json:"email" validate:"required"`
}

// Validate checks that every required field is present.
func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// User converts a validated request into a User.
func (r *CreateUserRequest) User() User {
	return User{Username: deref(r.Username), Email: deref(r.Email)}
}

// CreateUserResponse is returned by POST /api/users.
type CreateUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// PaymentRequest is a charge request. No range or format checks are applied
// to any field: negative amounts and arbitrary card strings are accepted.
type PaymentRequest struct {
	UserID     int64   `json:"user_id"`
	Amount     float64 `json:"amount"`
	CardNumber string  `json:"card_number"`
	CVV        string  `json:"cvv"`
}

// CreatePaymentRequest is the wire form of PaymentRequest.
type CreatePaymentRequest struct {
	UserID     *WholeNumber `json:"user_id" validate:"required"`
	Amount     *float64     `json:"amount" validate:"required"`
	CardNumber *string      `json:"card_number" validate:"required"`
	CVV        *string      `json:"cvv" validate:"required"`
}

// Validate checks that every required field is present.
func (r *CreatePaymentRequest) Validate() error {
	return validate.Struct(r)
}

// PaymentRequest converts a validated request into a PaymentRequest.
func (r *CreatePaymentRequest) PaymentRequest() PaymentRequest {
	p := PaymentRequest{CardNumber: deref(r.CardNumber), CVV: deref(r.CVV)}
	if r.UserID != nil {
		p.UserID = int64(*r.UserID)
	}
	if r.Amount != nil {
		p.Amount = *r.Amount
	}
	return p
}

// PaymentResponse is returned by POST /api/payments.
type PaymentResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

// WholeNumber is an int64 that also accepts JSON numbers written with a
// zero fraction or an exponent, such as 1.0 or 1e3.
type WholeNumber int64

var int64Type = reflect.TypeOf(int64(0))

// UnmarshalJSON implements json.Unmarshaler.
func (n *WholeNumber) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = WholeNumber(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: jsonKind(data), Type: int64Type}
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return &json.UnmarshalTypeError{Value: "number " + s, Type: int64Type}
	}
	*n = WholeNumber(f)
	return nil
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "value"
	}
	switch data[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "value"
	}
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// FieldErrors flattens a validation error into per-field entries. Errors that
// are not validator errors yield a single entry with an empty field.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Reason: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		reason := fe.Tag()
		if reason == "required" {
			reason = "field required"
		}
		out = append(out, FieldError{Field: fe.Field(), Reason: reason})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
