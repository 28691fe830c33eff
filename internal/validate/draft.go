package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/wellywell/plaquexpress/internal/pricing"
	"github.com/wellywell/plaquexpress/internal/types"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func fieldErr(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// Draft checks an order draft field by field and returns a *FieldError for
// the first one that is wrong.
func Draft(d *types.OrderDraft) error {
	switch d.PlateType {
	case types.Plate3D, types.PlateVinyl:
	default:
		return fieldErr("plateType", "must be one of 3d, vinyl")
	}
	switch d.VehicleType {
	case types.VehicleCar, types.VehicleMotorcycle:
	default:
		return fieldErr("vehicleType", "must be one of car, motorcycle")
	}
	switch d.PlateShape {
	case types.ShapeStandard, types.ShapeCompact:
	default:
		return fieldErr("plateShape", "must be one of standard, compact")
	}
	if d.Dimensions.Width <= 0 || d.Dimensions.Height <= 0 {
		return fieldErr("dimensions", "width and height must be positive")
	}
	if err := PlateNumber(d.PlateNumber); err != nil {
		return err
	}
	switch d.MountingOption {
	case types.MountingHoles, types.MountingTape:
	default:
		return fieldErr("mountingOption", "must be one of holes, tape")
	}
	if strings.TrimSpace(d.FullName) == "" {
		return fieldErr("fullName", "is required")
	}
	if err := Phone("phone", d.Phone); err != nil {
		return err
	}
	if strings.TrimSpace(d.Address) == "" {
		return fieldErr("address", "is required")
	}
	expected := pricing.TotalPrice(d.PlateType, d.MountingOption)
	if d.TotalPrice != expected {
		return fieldErr("totalPrice", fmt.Sprintf("expected %d", expected))
	}
	return nil
}

// PlateNumber rejects plate numbers that are blank or too long once
// stripped, instead of silently cutting them.
func PlateNumber(raw string) error {
	stripped := NormalizePlateNumber(raw)
	if stripped == "" {
		return fieldErr("plateNumber", "is required")
	}
	if len(stripped) > MaxPlateNumberLength {
		return fieldErr("plateNumber", fmt.Sprintf("at most %d characters", MaxPlateNumberLength))
	}
	return nil
}

// Phone accepts digits, spaces, '+' and '-' with 7 to 15 digits in total.
func Phone(field string, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return fieldErr(field, "is required")
	}
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '+' || r == '-':
		default:
			return fieldErr(field, "may contain only digits, spaces, + and -")
		}
	}
	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return fieldErr(field, fmt.Sprintf("must have %d to %d digits", minPhoneDigits, maxPhoneDigits))
	}
	return nil
}

// WhatsAppNumber accepts an optional leading '+' followed by 7 to 15 digits.
func WhatsAppNumber(field string, number string) error {
	digits := strings.TrimPrefix(number, "+")
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return fieldErr(field, fmt.Sprintf("must have %d to %d digits", minPhoneDigits, maxPhoneDigits))
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fieldErr(field, "must be digits with optional leading +")
		}
	}
	return nil
}

func EmailAddress(field string, address string) error {
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return fieldErr(field, "must be a valid email address")
	}
	return nil
}

// SettingsUpdate validates only the fields present in the update. Empty
// strings are allowed since they clear the destination.
func SettingsUpdate(u *types.SettingsUpdate) error {
	if u.EmailAddress != nil && *u.EmailAddress != "" {
		if err := EmailAddress("email_address", *u.EmailAddress); err != nil {
			return err
		}
	}
	if u.WhatsAppNumber != nil && *u.WhatsAppNumber != "" {
		if err := WhatsAppNumber("whatsapp_number", *u.WhatsAppNumber); err != nil {
			return err
		}
	}
	return nil
}
