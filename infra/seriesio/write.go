package seriesio

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/carbonshift/ren247/core/report"
)

// WriteReportJSON writes the sizing report to w in JSON format.
func WriteReportJSON(w io.Writer, rep report.Sizing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteReportCSV writes the sizing report to w as a single CSV record.
func WriteReportCSV(w io.Writer, rep report.Sizing) error {
	cw := csv.NewWriter(w)
	header := []string{
		"run_id", "model",
		"required_mwh", "required_infeasible",
		"searched_mwh", "searched_infeasible",
		"uncovered_mwh",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := []string{
		rep.RunID,
		rep.Model,
		strconv.FormatFloat(rep.Required.MWh, 'f', -1, 64),
		strconv.FormatBool(rep.Required.Infeasible),
		strconv.FormatFloat(rep.Searched.MWh, 'f', -1, 64),
		strconv.FormatBool(rep.Searched.Infeasible),
		strconv.FormatFloat(rep.UncoveredMWh, 'f', -1, 64),
	}
	if err := cw.Write(rec); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
