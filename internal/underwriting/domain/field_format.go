package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownFormat = errors.New("unknown field format")

type FieldFormat string

const (
	FieldFormatAddress     FieldFormat = "Address"
	FieldFormatCurrency    FieldFormat = "Currency"
	FieldFormatEnum        FieldFormat = "Enum"
	FieldFormatPhoneNumber FieldFormat = "PhoneNumber"
	FieldFormatString      FieldFormat = "String"
)

func (f FieldFormat) String() string {
	return string(f)
}

// ParseFieldFormat accepts only the exact, case-sensitive name of a registered format.
func ParseFieldFormat(value string) (FieldFormat, error) {
	format := FieldFormat(value)
	if _, err := ResolveBehavior(format); err != nil {
		return "", err
	}
	return format, nil
}

func unknownFormatError(format FieldFormat) error {
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}
