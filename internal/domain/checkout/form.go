// Package checkout validates the customer form that turns a cart into an order.
package checkout

import (
	"regexp"
	"strings"

	domainerrors "storefront/internal/domain/errors"
)

// Field names reported in validation errors.
const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldEmail       = "email"
	FieldGovernorate = "governorate"
	FieldAddress     = "address"
	FieldPayment     = "payment"
	FieldCoupon      = "coupon"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Form is the checkout input as entered by the customer.
type Form struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Governorate string `json:"governorate"`
	Address     string `json:"address"`
	Payment     string `json:"payment"`
	CouponCode  string `json:"coupon"`
}

type rule struct {
	field   string
	code    string
	message string
	failed  func(Form) bool
}

// rules run in this order; the first failure wins.
var rules = []rule{
	{
		field:   FieldName,
		code:    "NAME_REQUIRED",
		message: "الرجاء إدخال اسم الزبون",
		failed:  func(f Form) bool { return f.Name == "" },
	},
	{
		field:   FieldPhone,
		code:    "PHONE_REQUIRED",
		message: "الرجاء إدخال رقم الهاتف",
		failed:  func(f Form) bool { return f.Phone == "" },
	},
	{
		field:   FieldEmail,
		code:    "EMAIL_INVALID",
		message: "الرجاء إدخال بريد إلكتروني صالح أو تركه فارغاً",
		failed:  func(f Form) bool { return f.Email != "" && !emailPattern.MatchString(f.Email) },
	},
	{
		field:   FieldGovernorate,
		code:    "GOVERNORATE_REQUIRED",
		message: "الرجاء اختيار المحافظة",
		failed:  func(f Form) bool { return f.Governorate == "" },
	},
	{
		field:   FieldAddress,
		code:    "ADDRESS_REQUIRED",
		message: "الرجاء إدخال العنوان",
		failed:  func(f Form) bool { return f.Address == "" },
	},
	{
		field:   FieldPayment,
		code:    "PAYMENT_REQUIRED",
		message: "الرجاء اختيار طريقة الدفع",
		failed:  func(f Form) bool { return f.Payment == "" },
	},
}

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Name:        strings.TrimSpace(f.Name),
		Phone:       strings.TrimSpace(f.Phone),
		Email:       strings.TrimSpace(f.Email),
		Governorate: strings.TrimSpace(f.Governorate),
		Address:     strings.TrimSpace(f.Address),
		Payment:     strings.TrimSpace(f.Payment),
		CouponCode:  strings.TrimSpace(f.CouponCode),
	}
}

// Validate checks the normalized form and reports only the first failing rule.
func Validate(f Form) *domainerrors.ValidationError {
	f = f.Normalize()
	for _, r := range rules {
		if r.failed(f) {
			return domainerrors.NewValidationError(r.field, r.code, r.message)
		}
	}

	return nil
}

// CouponCodeRequired is returned when a coupon is applied with a blank code.
func CouponCodeRequired() *domainerrors.ValidationError {
	return domainerrors.NewValidationError(FieldCoupon, "COUPON_CODE_REQUIRED", "الرجاء إدخال كود الكوبون.")
}
