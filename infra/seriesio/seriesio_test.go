package seriesio

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonshift/ren247/core/report"
	"github.com/carbonshift/ren247/core/sizing"
)

func TestReadRenewable(t *testing.T) {
	in := "ren_mw\n10\n0\n10\n"
	values, err := ReadRenewable(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 0, 10}, values)
}

func TestReadRenewableBadValue(t *testing.T) {
	_, err := ReadRenewable(strings.NewReader("ren_mw\nnot-a-number\n"))
	assert.Error(t, err)
}

func TestReadFacilityLocatesColumn(t *testing.T) {
	in := "timestamp,avg_dc_power_mw,site\n2023-01-01T00:00:00Z,5,dc1\n2023-01-01T01:00:00Z,6.5,dc1\n"
	records, err := ReadFacility(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 5.0, records[0].AvgDCPowerMW)
	assert.Equal(t, 6.5, records[1].AvgDCPowerMW)
}

func TestReadFacilityMissingColumn(t *testing.T) {
	_, err := ReadFacility(strings.NewReader("timestamp,power\nx,5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "avg_dc_power_mw")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	renPath := filepath.Join(dir, "ren.csv")
	facPath := filepath.Join(dir, "fac.csv")
	require.NoError(t, os.WriteFile(renPath, []byte("ren_mw\n10\n0\n"), 0o644))
	require.NoError(t, os.WriteFile(facPath, []byte("avg_dc_power_mw\n5\n5\n"), 0o644))

	s, err := Load(renPath, facPath)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 5.0, s.Net(0))
}

func TestLoadRejectsMisalignedSeries(t *testing.T) {
	dir := t.TempDir()
	renPath := filepath.Join(dir, "ren.csv")
	facPath := filepath.Join(dir, "fac.csv")
	require.NoError(t, os.WriteFile(renPath, []byte("ren_mw\n10\n0\n10\n"), 0o644))
	require.NoError(t, os.WriteFile(facPath, []byte("avg_dc_power_mw\n5\n"), 0o644))

	_, err := Load(renPath, facPath)
	assert.Error(t, err)
}

func TestWriteReportJSON(t *testing.T) {
	rep := report.NewSizing("ideal", sizing.Capacity{MWh: 5}, sizing.Capacity{MWh: 4.9}, 0.5, report.SeriesStats{Steps: 3})
	var buf bytes.Buffer
	require.NoError(t, WriteReportJSON(&buf, rep))

	var decoded report.Sizing
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.RunID, decoded.RunID)
	assert.Equal(t, 5.0, decoded.Required.MWh)
}

func TestWriteReportCSV(t *testing.T) {
	rep := report.NewSizing("clc", sizing.Infeasible(), sizing.Capacity{MWh: 4.9}, 0, report.SeriesStats{})
	var buf bytes.Buffer
	require.NoError(t, WriteReportCSV(&buf, rep))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "required_infeasible")
	assert.Contains(t, lines[1], rep.RunID)
	assert.Contains(t, lines[1], "true")
}
