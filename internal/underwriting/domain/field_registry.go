package domain

// fieldBehaviors is filled once at package initialization and only read afterwards,
// so concurrent lookups need no locking.
var fieldBehaviors = map[FieldFormat]FieldBehavior{
	FieldFormatAddress:     addressBehavior{},
	FieldFormatCurrency:    currencyBehavior{},
	FieldFormatEnum:        enumBehavior{},
	FieldFormatPhoneNumber: phoneNumberBehavior{},
	FieldFormatString:      stringBehavior{},
}

var supportedFormats = []FieldFormat{
	FieldFormatAddress,
	FieldFormatCurrency,
	FieldFormatEnum,
	FieldFormatPhoneNumber,
	FieldFormatString,
}

// ResolveBehavior returns the shared behavior registered for format.
func ResolveBehavior(format FieldFormat) (FieldBehavior, error) {
	behavior, found := fieldBehaviors[format]
	if !found {
		return nil, unknownFormatError(format)
	}

	return behavior, nil
}

func SupportedFormats() []FieldFormat {
	result := make([]FieldFormat, len(supportedFormats))
	copy(result, supportedFormats)
	return result
}
