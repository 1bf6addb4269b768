package domain

import "errors"

var (
	ErrRiskTypeNameRequired = errors.New("risk type name is required")
	ErrFieldNameRequired    = errors.New("field name is required")
	ErrUserIDRequired       = errors.New("user ID is required")
	ErrRiskTypeIDRequired   = errors.New("risk type ID is required")
)
