// Package gstr holds the pure transformation core that turns ledger records
// into the nested JSON documents expected by the GST filing portal. Nothing
// in this package performs I/O; every function takes resolved in-memory data
// and returns synchronously, so callers may retry freely.
package gstr

import (
	"kaagaz/internal/domain"
)

// TaxSplit is the decomposition of an invoice's total tax into the
// integrated (inter-state) or central+state (intra-state) components.
// Exactly one side of the split is populated; a zero total yields all zeros.
type TaxSplit struct {
	IGST float64 `json:"iamt"`
	CGST float64 `json:"camt"`
	SGST float64 `json:"samt"`
}

// SplitTax distributes totalTax between the IGST and CGST/SGST components
// based on whether the place of supply matches the filer's home state.
// No rounding is applied; display rounding is presentation-only. Negative
// totals (credit notes) split the same way with sign preserved.
func SplitTax(totalTax float64, placeOfSupply, homeState string) TaxSplit {
	if placeOfSupply != homeState {
		return TaxSplit{IGST: totalTax}
	}
	return TaxSplit{CGST: totalTax / 2, SGST: totalTax / 2}
}

// StateCode extracts the 2-digit state code from a GSTIN, rejecting
// malformed identifiers upfront so a bad filer GSTIN cannot silently
// misclassify every invoice as inter- or intra-state.
func StateCode(gstin string) (string, error) {
	if len(gstin) != domain.GSTINLength {
		return "", domain.ErrInvalidGSTIN
	}
	return gstin[:2], nil
}
