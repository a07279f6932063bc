package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
)

type Field string

const (
	NAME     Field = "name"
	EMAIL    Field = "email"
	PHONE    Field = "phone"
	PASSWORD Field = "password"
	OTP      Field = "otp"
	TAX_ID   Field = "taxId"
)

const (
	maxNameLength     = 100
	maxEmailLength    = 254
	minPhoneLength    = 9
	maxPhoneLength    = 16
	minPasswordLength = 8
	// bcrypt only looks at the first 72 bytes
	maxPasswordLength = 72
	OTPLength         = 6
)

// GSTIN: state code, PAN, entity number, 'Z', checksum
var taxIdPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// Form is the subset of a signup draft that is checked before submission.
type Form struct {
	Name     string
	Email    string
	Phone    string
	Password string
	IsSeller bool
	TaxID    string
}

type fieldValue struct {
	field Field
	value string
}

// Validate checks a single field value against its static format rules.
// It returns nil or a *FieldError.
func Validate(field Field, value string) error {
	switch field {
	case NAME:
		return validateName(value)
	case EMAIL:
		return validateEmail(value)
	case PHONE:
		return validatePhone(value)
	case PASSWORD:
		return validatePassword(value)
	case OTP:
		return validateOTP(value)
	case TAX_ID:
		return validateTaxID(value)
	default:
		return NewFieldError(field, fmt.Sprintf("Unknown field %q", field))
	}
}

// ValidateAll returns every field error that blocks submission of the form.
// The tax ID is only required when registering as a seller.
func ValidateAll(form Form) FieldErrors {
	checks := []fieldValue{
		{NAME, form.Name},
		{EMAIL, form.Email},
		{PHONE, form.Phone},
		{PASSWORD, form.Password},
	}
	if form.IsSeller {
		checks = append(checks, fieldValue{TAX_ID, form.TaxID})
	}

	var errs FieldErrors
	for _, c := range checks {
		if err := Validate(c.field, c.value); err != nil {
			errs = append(errs, *err.(*FieldError))
		}
	}

	return errs
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return NewFieldError(NAME, "Name is required")
	}
	if !govalidator.StringLength(trimmed, "1", strconv.Itoa(maxNameLength)) {
		return NewFieldError(NAME, fmt.Sprintf("Name must be at most %d characters", maxNameLength))
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return NewFieldError(EMAIL, "Email is required")
	}
	if !govalidator.StringLength(email, "3", strconv.Itoa(maxEmailLength)) || !govalidator.IsEmail(email) {
		return NewFieldError(EMAIL, "Email is not a valid address")
	}

	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return NewFieldError(PHONE, "Phone number is required")
	}
	// IsE164 treats the leading plus as optional
	if !strings.HasPrefix(phone, "+") ||
		!govalidator.IsE164(phone) ||
		!govalidator.StringLength(phone, strconv.Itoa(minPhoneLength), strconv.Itoa(maxPhoneLength)) {
		return NewFieldError(PHONE, "Phone number must include the country code, e.g. +15551234567")
	}

	return nil
}

func validatePassword(password string) error {
	if !govalidator.ByteLength(password, strconv.Itoa(minPasswordLength), strconv.Itoa(maxPasswordLength)) {
		if len(password) < minPasswordLength {
			return NewFieldError(PASSWORD, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
		}
		return NewFieldError(PASSWORD, fmt.Sprintf("Password must be at most %d bytes", maxPasswordLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return NewFieldError(PASSWORD, "Password must contain an upper case letter, a lower case letter, a number and a symbol")
	}

	return nil
}

func validateOTP(otp string) error {
	length := strconv.Itoa(OTPLength)
	if !govalidator.StringLength(otp, length, length) || !govalidator.IsNumeric(otp) {
		return NewFieldError(OTP, fmt.Sprintf("Code must be %d digits", OTPLength))
	}

	return nil
}

func validateTaxID(taxID string) error {
	if taxID == "" {
		return NewFieldError(TAX_ID, "GST number is required for sellers")
	}
	if !taxIdPattern.MatchString(taxID) {
		return NewFieldError(TAX_ID, "GST number must be a valid 15 character GSTIN")
	}

	return nil
}
