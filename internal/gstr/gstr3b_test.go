package gstr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kaagaz/internal/domain"
)

func TestBuildGSTR3B_OutwardAggregates(t *testing.T) {
	sales := []domain.SalesInvoice{
		b2bSale("INV-1", "07FGHIJ5678K2Z9", "07", "2024-04-10", 1180, 1000, 18), // inter
		b2bSale("INV-2", "", "27", "2024-04-11", 590, 500, 18),                  // intra, B2C counts too
		b2bSale("INV-3", "07FGHIJ5678K2Z9", "07", "2024-05-10", 9999, 9000, 18), // outside period
	}

	doc, err := BuildGSTR3B(sales, nil, Period{Year: 2024, Month: 4}, filerGSTIN)
	require.NoError(t, err)

	out := doc.SupDetails.OsupDet
	assert.Equal(t, 1500.0, out.Txval)
	assert.Equal(t, 180.0, out.Iamt)
	assert.Equal(t, 45.0, out.Camt)
	assert.Equal(t, 45.0, out.Samt)
	assert.Equal(t, 0.0, out.Csamt)
	assert.Equal(t, "042024", doc.Fp)
}

func TestBuildGSTR3B_ClaimedITCOnly(t *testing.T) {
	rows := []ITCSupplierRow{
		{GSTIN: "07FGHIJ5678K2Z9", IAmt: 100, CAmt: 50, SAmt: 50, TotalITC: 200, IsClaimed: true},
		{GSTIN: "29LMNOP9012Q3Z4", IAmt: 900, CAmt: 0, SAmt: 0, TotalITC: 900, IsClaimed: false},
	}

	doc, err := BuildGSTR3B(nil, rows, Period{Year: 2024, Month: 4}, filerGSTIN)
	require.NoError(t, err)

	assert.Equal(t, 100.0, doc.ItcElg.ItcNet.Iamt)
	assert.Equal(t, 50.0, doc.ItcElg.ItcNet.Camt)
	assert.Equal(t, 50.0, doc.ItcElg.ItcNet.Samt)

	require.Len(t, doc.ItcElg.ItcAvl, 1)
	assert.Equal(t, "OTH", doc.ItcElg.ItcAvl[0].Ty)
	assert.Equal(t, 100.0, doc.ItcElg.ItcAvl[0].Iamt)
}

func TestBuildGSTR3B_ZeroSectionsPresent(t *testing.T) {
	doc, err := BuildGSTR3B(nil, nil, Period{Year: 2024, Month: 4}, filerGSTIN)
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))

	// The portal requires these sections even when nothing is computed.
	for _, key := range []string{"sup_details", "inter_sup", "inward_sup", "itc_elg", "tx_pay", "interest", "latefee"} {
		assert.Contains(t, m, key)
	}

	// Empty lists must serialize as [], not null.
	assert.JSONEq(t, `{"unreg_details":[],"comp_details":[],"uin_details":[]}`, string(m["inter_sup"]))
}

func TestBuildGSTR3B_RejectsMalformedFilerGSTIN(t *testing.T) {
	_, err := BuildGSTR3B(nil, nil, Period{Year: 2024, Month: 4}, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
}

func TestGSTR3BDocument_ExportFileName(t *testing.T) {
	doc := &GSTR3BDocument{Gstin: filerGSTIN, Fp: "042024"}
	assert.Equal(t, "GSTR3B_27ABCDE1234F1Z5_042024.json", doc.ExportFileName())
}
