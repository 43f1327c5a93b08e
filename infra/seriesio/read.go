// Package seriesio reads the CSV input series and writes sizing reports.
package seriesio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/carbonshift/ren247/core/timeseries"
)

// FacilityColumn is the header name of the facility draw column.
const FacilityColumn = "avg_dc_power_mw"

// ReadRenewable parses a renewable generation CSV: one header row, values in
// the first column.
func ReadRenewable(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("renewable header: %w", err)
	}

	var values []float64
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("renewable row %d: %w", row, err)
		}
		v, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("renewable row %d: %w", row, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// ReadFacility parses a facility power CSV. The column named
// avg_dc_power_mw is located via the header; other columns are ignored.
func ReadFacility(r io.Reader) ([]timeseries.FacilityRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("facility header: %w", err)
	}
	col := -1
	for i, name := range header {
		if name == FacilityColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("facility series: no %q column", FacilityColumn)
	}

	var records []timeseries.FacilityRecord
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("facility row %d: %w", row, err)
		}
		if col >= len(rec) {
			return nil, fmt.Errorf("facility row %d: missing column %d", row, col)
		}
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			return nil, fmt.Errorf("facility row %d: %w", row, err)
		}
		records = append(records, timeseries.FacilityRecord{AvgDCPowerMW: v})
	}
	return records, nil
}

// Load reads both series files and returns a validated, aligned Series.
func Load(renewablePath, facilityPath string) (timeseries.Series, error) {
	renFile, err := os.Open(renewablePath)
	if err != nil {
		return timeseries.Series{}, err
	}
	defer renFile.Close()
	ren, err := ReadRenewable(renFile)
	if err != nil {
		return timeseries.Series{}, err
	}

	facFile, err := os.Open(facilityPath)
	if err != nil {
		return timeseries.Series{}, err
	}
	defer facFile.Close()
	fac, err := ReadFacility(facFile)
	if err != nil {
		return timeseries.Series{}, err
	}

	s := timeseries.Series{RenewableMW: ren, Facility: fac}
	if err := s.Validate(); err != nil {
		return timeseries.Series{}, err
	}
	return s, nil
}
