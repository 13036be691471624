package gstr

import (
	"fmt"

	"kaagaz/internal/domain"
)

// GSTR3B document structures, portal wire format.

// OutwardDetail is the 3.1 outward-supply aggregate.
type OutwardDetail struct {
	Txval float64 `json:"txval"`
	Iamt  float64 `json:"iamt"`
	Camt  float64 `json:"camt"`
	Samt  float64 `json:"samt"`
	Csamt float64 `json:"csamt"`
}

// InwardStated is the nil-rated/exempt inward aggregate.
type InwardStated struct {
	Txval float64 `json:"txval"`
	Iamt  float64 `json:"iamt"`
}

// SupDetails groups the outward-supply section.
type SupDetails struct {
	OsupDet OutwardDetail `json:"osup_det"`
	IsupDet InwardStated  `json:"isup_det"`
}

// InterSup holds inter-state supplies to unregistered, composition and UIN
// counterparties. Not computed here; kept structurally present and empty.
type InterSup struct {
	UnregDetails []any `json:"unreg_details"`
	CompDetails  []any `json:"comp_details"`
	UinDetails   []any `json:"uin_details"`
}

// ReverseCharge is the reverse-charge inward aggregate, always zero here.
type ReverseCharge struct {
	Txval float64 `json:"txval"`
	Iamt  float64 `json:"iamt"`
	Camt  float64 `json:"camt"`
	Samt  float64 `json:"samt"`
	Csamt float64 `json:"csamt"`
}

// InwardSup groups the inward-supply section.
type InwardSup struct {
	IsupRev ReverseCharge `json:"isup_rev"`
}

// ITCAmounts carries the three input-tax-credit components.
type ITCAmounts struct {
	Iamt float64 `json:"iamt"`
	Camt float64 `json:"camt"`
	Samt float64 `json:"samt"`
}

// ITCEntry is one row of the eligible-ITC table. Claimed credit is filed
// under the single aggregate "OTH" category; the ledger does not classify
// inward supplies by nature.
type ITCEntry struct {
	Ty   string  `json:"ty"`
	Iamt float64 `json:"iamt"`
	Camt float64 `json:"camt"`
	Samt float64 `json:"samt"`
}

// ITCEligible groups the eligible-ITC section.
type ITCEligible struct {
	ItcAvl []ITCEntry `json:"itc_avl"`
	ItcRev []ITCEntry `json:"itc_rev"`
	ItcNet ITCAmounts `json:"itc_net"`
}

// TaxPayment is one head of the payment-of-tax table.
type TaxPayment struct {
	Amt   float64 `json:"amt"`
	Chlln float64 `json:"chlln"`
}

// TxPay is the payment-of-tax section, zero because payment is not
// computed by this system.
type TxPay struct {
	Cgst TaxPayment `json:"cgst"`
	Sgst TaxPayment `json:"sgst"`
	Igst TaxPayment `json:"igst"`
	Cess TaxPayment `json:"cess"`
}

// InterestHeads carries interest per tax head.
type InterestHeads struct {
	Cgst float64 `json:"cgst"`
	Sgst float64 `json:"sgst"`
	Igst float64 `json:"igst"`
	Cess float64 `json:"cess"`
}

// LateFeeHeads carries late fee per tax head.
type LateFeeHeads struct {
	Cgst float64 `json:"cgst"`
	Sgst float64 `json:"sgst"`
}

// GSTR3BDocument is the complete summary return for one period. Derived,
// regenerated whole per process action, never persisted.
type GSTR3BDocument struct {
	Gstin      string        `json:"gstin"`
	Fp         string        `json:"fp"`
	SupDetails SupDetails    `json:"sup_details"`
	InterSup   InterSup      `json:"inter_sup"`
	InwardSup  InwardSup     `json:"inward_sup"`
	ItcElg     ITCEligible   `json:"itc_elg"`
	TxPay      TxPay         `json:"tx_pay"`
	Interest   InterestHeads `json:"interest"`
	Latefee    LateFeeHeads  `json:"latefee"`
}

// ExportFileName returns the conventional name for the serialized document.
func (d *GSTR3BDocument) ExportFileName() string {
	return fmt.Sprintf("GSTR3B_%s_%s.json", d.Gstin, d.Fp)
}

// BuildGSTR3B assembles the GSTR-3B document for one filing period from a
// sales ledger snapshot and the claimed rows of a reconciled GSTR-2B
// workbook. The filer GSTIN is validated upfront; figures are pure
// aggregates of the inputs.
func BuildGSTR3B(sales []domain.SalesInvoice, itcRows []ITCSupplierRow, p Period, filerGSTIN string) (*GSTR3BDocument, error) {
	homeState, err := StateCode(filerGSTIN)
	if err != nil {
		return nil, err
	}

	var outward OutwardDetail
	for _, inv := range FilterSalesByPeriod(sales, p) {
		outward.Txval += inv.TaxableValue
		split := SplitTax(inv.TotalTax(), inv.PlaceOfSupply, homeState)
		outward.Iamt += split.IGST
		outward.Camt += split.CGST
		outward.Samt += split.SGST
	}

	var net ITCAmounts
	for _, row := range itcRows {
		if !row.IsClaimed {
			continue
		}
		net.Iamt += row.IAmt
		net.Camt += row.CAmt
		net.Samt += row.SAmt
	}

	return &GSTR3BDocument{
		Gstin:      filerGSTIN,
		Fp:         p.String(),
		SupDetails: SupDetails{OsupDet: outward},
		InterSup: InterSup{
			UnregDetails: []any{},
			CompDetails:  []any{},
			UinDetails:   []any{},
		},
		InwardSup: InwardSup{},
		ItcElg: ITCEligible{
			ItcAvl: []ITCEntry{{Ty: "OTH", Iamt: net.Iamt, Camt: net.Camt, Samt: net.Samt}},
			ItcRev: []ITCEntry{},
			ItcNet: net,
		},
	}, nil
}
