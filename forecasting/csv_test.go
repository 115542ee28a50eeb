package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLoadCSV_TwoRows(t *testing.T) {
	records, dropped, err := ParseLoadCSV("timestamp,load\n2023-01-01,100\n2023-01-02,110")

	require.NoError(t, err)
	assert.Equal(t, 0, dropped)
	require.Len(t, records, 2)
	assert.Equal(t, "2023-01-01", records[0].Timestamp)
	assert.Equal(t, 100.0, records[0].Load)
	assert.Equal(t, 110.0, records[1].Load)
}

func TestParseLoadCSV_MissingRequiredColumn(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no load column", "timestamp,temperature\n2023-01-01,21.5"},
		{"no timestamp column", "load,temperature\n100,21.5"},
		{"empty input", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := ParseLoadCSV(test.text)
			require.Error(t, err)
			assert.True(t, IsFormatError(err), "expected a FormatError, got %v", err)
		})
	}
}

func TestParseLoadCSV_DropsBadRowsSilently(t *testing.T) {
	text := "Timestamp,Load\n" +
		"2023-01-01,100\n" +
		"2023-01-02,not-a-number\n" +
		"2023-01-03,\n" +
		"2023-01-04,110\n" +
		"2023-01-05\n"

	records, dropped, err := ParseLoadCSV(text)

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 3, dropped)
}

func TestParseLoadCSV_OptionalCovariates(t *testing.T) {
	text := "timestamp,load,temperature,humidity\n" +
		"2023-01-01,100,21.5,60\n" +
		"2023-01-02,110,,\n"

	records, dropped, err := ParseLoadCSV(text)

	require.NoError(t, err)
	assert.Equal(t, 0, dropped)
	require.Len(t, records, 2)
	require.NotNil(t, records[0].Temperature)
	assert.Equal(t, 21.5, *records[0].Temperature)
	require.NotNil(t, records[0].Humidity)
	assert.Equal(t, 60.0, *records[0].Humidity)
	assert.Nil(t, records[1].Temperature)
	assert.Nil(t, records[1].Humidity)
}

func TestParseLoadCSV_HeaderOnly(t *testing.T) {
	records, dropped, err := ParseLoadCSV("timestamp,load\n")

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, dropped)
}

func TestExportCSV_RoundTrip(t *testing.T) {
	records, _, err := ParseLoadCSV("timestamp,load\n2023-01-01,10\n2023-01-02,12\n2023-01-03,14\n2023-01-04,16\n2023-01-05,18")
	require.NoError(t, err)

	points, err := Forecast(records, 3, MethodLinear)
	require.NoError(t, err)

	exported := ExportCSV(points)
	reparsed, err := ParseForecastCSV(exported)
	require.NoError(t, err)

	require.Len(t, reparsed, len(points))
	historical, predicted := 0, 0
	for _, p := range reparsed {
		if p.Historical != nil {
			historical++
		} else {
			predicted++
		}
	}
	assert.Equal(t, 5, historical)
	assert.Equal(t, 3, predicted)
}

func TestExportCSV_NullHistoricalRendersEmpty(t *testing.T) {
	records := dailyRecords(10, 12, 14, 16, 18)
	points, err := Forecast(records, 1, MethodMovingAverage)
	require.NoError(t, err)

	exported := ExportCSV(points)
	assert.Contains(t, exported, "timestamp,historical,predicted,confidence")
	assert.Contains(t, exported, "2023-01-06,,14,78")
}
