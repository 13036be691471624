package gstr

import "strconv"

// FilingEvent is one filing record from the external return-status API,
// validated at the boundary before reaching this package.
type FilingEvent struct {
	ReturnPeriod string `json:"returnPeriod"` // first two chars: 2-digit month
	ReturnType   string `json:"returnType"`   // "GSTR1" or "GSTR3B"
	Status       string `json:"status,omitempty"`
	DateOfFiling string `json:"dateOfFiling"`
	ModeOfFiling string `json:"modeOfFiling"`
}

// FilingStatusRow is one month's filing summary across both return types.
// Rows key by month name only: within a single financial year (Apr of year
// N through Mar of year N+1) month names cannot collide.
type FilingStatusRow struct {
	Month        string `json:"month"`
	GSTR1Status  string `json:"gstr1_status,omitempty"`
	GSTR1Dof     string `json:"gstr1_dof,omitempty"`
	GSTR1Mof     string `json:"gstr1_mof,omitempty"`
	GSTR3BStatus string `json:"gstr3b_status,omitempty"`
	GSTR3BDof    string `json:"gstr3b_dof,omitempty"`
	GSTR3BMof    string `json:"gstr3b_mof,omitempty"`
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NormalizeFilingStatus reshapes the API's flat event list into one row per
// calendar month, in first-appearance order. Events with an unusable
// return period are skipped; a missing status defaults to "Filed". Nil or
// empty input yields an empty result, never an error.
func NormalizeFilingStatus(events []FilingEvent) []FilingStatusRow {
	rows := make([]FilingStatusRow, 0, len(events))
	index := make(map[string]int)

	for _, ev := range events {
		if len(ev.ReturnPeriod) < 2 {
			continue
		}
		month, err := strconv.Atoi(ev.ReturnPeriod[:2])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		name := monthNames[month-1]

		i, ok := index[name]
		if !ok {
			i = len(rows)
			index[name] = i
			rows = append(rows, FilingStatusRow{Month: name})
		}

		status := ev.Status
		if status == "" {
			status = "Filed"
		}

		switch ev.ReturnType {
		case "GSTR1":
			rows[i].GSTR1Status = status
			rows[i].GSTR1Dof = ev.DateOfFiling
			rows[i].GSTR1Mof = ev.ModeOfFiling
		case "GSTR3B":
			rows[i].GSTR3BStatus = status
			rows[i].GSTR3BDof = ev.DateOfFiling
			rows[i].GSTR3BMof = ev.ModeOfFiling
		}
	}
	return rows
}
