package gstr

import (
	"fmt"

	"kaagaz/internal/domain"
)

// GSTR1 document structures. Field names are the government portal's wire
// format and must not change.

// ItemDetail carries the taxable value, rate and tax split for one line.
type ItemDetail struct {
	Txval float64 `json:"txval"`
	Rt    float64 `json:"rt"`
	Iamt  float64 `json:"iamt"`
	Camt  float64 `json:"camt"`
	Samt  float64 `json:"samt"`
	Csamt float64 `json:"csamt"`
}

// InvoiceItem is a numbered line item. The ledger records one rate per
// invoice, so every invoice carries exactly one item.
type InvoiceItem struct {
	Num    int        `json:"num"`
	ItmDet ItemDetail `json:"itm_det"`
}

// B2BInvoice is one outward invoice under a counterparty group.
type B2BInvoice struct {
	Inum   string        `json:"inum"`
	Idt    string        `json:"idt"` // DD-MM-YYYY
	Val    float64       `json:"val"`
	Pos    string        `json:"pos"`
	Rchrg  string        `json:"rchrg"`
	InvTyp string        `json:"inv_typ"`
	Itms   []InvoiceItem `json:"itms"`
}

// B2BGroup collects a counterparty's invoices under its GSTIN.
type B2BGroup struct {
	Ctin string       `json:"ctin"`
	Inv  []B2BInvoice `json:"inv"`
}

// GSTR1Document is the complete outward-supply return for one period.
// It is a derived value: regenerated whole on every process action and
// never persisted.
type GSTR1Document struct {
	Gstin string     `json:"gstin"`
	Fp    string     `json:"fp"`
	Gt    float64    `json:"gt"`
	CurGt float64    `json:"cur_gt"`
	B2B   []B2BGroup `json:"b2b"`
	// B2C invoices contribute to cur_gt but no b2cs section is emitted yet.
}

// ExportFileName returns the conventional name for the serialized document.
func (d *GSTR1Document) ExportFileName() string {
	return fmt.Sprintf("GSTR1_%s_%s.json", d.Gstin, d.Fp)
}

// GroupB2B restricts invoices to those with a well-formed counterparty
// GSTIN and groups them by it, preserving first-occurrence order. Each
// source invoice becomes one inv entry carrying a single tax item.
func GroupB2B(invoices []domain.SalesInvoice, homeState string) []B2BGroup {
	groups := make([]B2BGroup, 0)
	index := make(map[string]int)

	for _, inv := range invoices {
		if !inv.IsB2B() {
			continue
		}
		entry := toB2BInvoice(inv, homeState)
		if i, ok := index[inv.CustomerGSTIN]; ok {
			groups[i].Inv = append(groups[i].Inv, entry)
			continue
		}
		index[inv.CustomerGSTIN] = len(groups)
		groups = append(groups, B2BGroup{Ctin: inv.CustomerGSTIN, Inv: []B2BInvoice{entry}})
	}
	return groups
}

func toB2BInvoice(inv domain.SalesInvoice, homeState string) B2BInvoice {
	split := SplitTax(inv.TotalTax(), inv.PlaceOfSupply, homeState)

	idt := inv.InvoiceDate
	if t, ok := ParseInvoiceDate(inv.InvoiceDate); ok {
		idt = t.Format("02-01-2006")
	}

	return B2BInvoice{
		Inum:   inv.InvoiceNumber,
		Idt:    idt,
		Val:    inv.InvoiceValue,
		Pos:    inv.PlaceOfSupply,
		Rchrg:  "N",
		InvTyp: "R",
		Itms: []InvoiceItem{{
			Num: 1,
			ItmDet: ItemDetail{
				Txval: inv.TaxableValue,
				Rt:    inv.GSTRate,
				Iamt:  split.IGST,
				Camt:  split.CGST,
				Samt:  split.SGST,
			},
		}},
	}
}

// BuildGSTR1 assembles the GSTR-1 document for one filing period from a
// full snapshot of the client's sales ledger. The filer GSTIN is validated
// before any transformation runs; the build is atomic and emits nothing on
// failure. Current-period turnover sums invoice values over the whole
// filtered set, B2B and B2C combined.
func BuildGSTR1(invoices []domain.SalesInvoice, p Period, filerGSTIN string, grossTurnoverLastFY float64) (*GSTR1Document, error) {
	homeState, err := StateCode(filerGSTIN)
	if err != nil {
		return nil, err
	}

	filtered := FilterSalesByPeriod(invoices, p)

	var turnover float64
	for _, inv := range filtered {
		turnover += inv.InvoiceValue
	}

	return &GSTR1Document{
		Gstin: filerGSTIN,
		Fp:    p.String(),
		Gt:    grossTurnoverLastFY,
		CurGt: turnover,
		B2B:   GroupB2B(filtered, homeState),
	}, nil
}
