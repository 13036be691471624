package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")

	// Validation errors, surfaced before any transformation runs.
	ErrInvalidGSTIN        = errors.New("GSTIN must be exactly 15 characters")
	ErrInvalidPeriod       = errors.New("filing period month must be between 1 and 12")
	ErrInvalidInvoiceValue = errors.New("invoice value must not be less than taxable value")
	ErrInvalidFinancialYr  = errors.New("financial year must be in YYYY-YY format")

	// Workbook format errors; an upload failing these is rejected whole.
	ErrSheetNotFound  = errors.New("no sheet with 'b2b' in its name found in workbook")
	ErrHeaderNotFound = errors.New("no header row with supplier GSTIN column found in b2b sheet")

	// ErrGSTUpstream wraps failures of the external GST lookup service.
	ErrGSTUpstream = errors.New("GST lookup service unavailable")
)
