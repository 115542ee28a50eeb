package forecasting

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"se-server/models/forecast"
)

// ParseLoadCSV turns raw CSV text into load records. The first line must be
// a header containing the required columns "timestamp" and "load"
// (case-insensitive); "temperature" and "humidity" are optional. Rows whose
// load value does not parse as a finite float are dropped, not errors; the
// second return value counts them so callers can surface the loss.
func ParseLoadCSV(text string) ([]forecast.LoadRecord, int, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, 0, &FormatError{Column: "timestamp"}
	}
	if err != nil {
		return nil, 0, err
	}

	tsIdx, loadIdx, tempIdx, humIdx := -1, -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "timestamp":
			tsIdx = i
		case "load":
			loadIdx = i
		case "temperature":
			tempIdx = i
		case "humidity":
			humIdx = i
		}
	}
	if tsIdx == -1 {
		return nil, 0, &FormatError{Column: "timestamp"}
	}
	if loadIdx == -1 {
		return nil, 0, &FormatError{Column: "load"}
	}

	var records []forecast.LoadRecord
	dropped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			dropped++
			continue
		}
		load, ok := fieldFloat(row, loadIdx)
		if !ok {
			dropped++
			continue
		}
		rec := forecast.LoadRecord{
			Timestamp: fieldString(row, tsIdx),
			Load:      load,
		}
		if v, ok := fieldFloat(row, tempIdx); ok {
			rec.Temperature = &v
		}
		if v, ok := fieldFloat(row, humIdx); ok {
			rec.Humidity = &v
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}

// ExportCSV serializes forecast points back to CSV text with the header
// "timestamp,historical,predicted,confidence". A nil historical renders as
// an empty field.
func ExportCSV(points []forecast.ForecastPoint) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Write([]string{"timestamp", "historical", "predicted", "confidence"})
	for _, p := range points {
		historical := ""
		if p.Historical != nil {
			historical = formatFloat(*p.Historical)
		}
		w.Write([]string{
			p.Timestamp,
			historical,
			formatFloat(p.Predicted),
			formatFloat(p.Confidence),
		})
	}
	w.Flush()
	return sb.String()
}

// ParseForecastCSV reads exported forecast CSV text back into points.
// It requires the same header ExportCSV writes.
func ParseForecastCSV(text string) ([]forecast.ForecastPoint, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &FormatError{Column: "timestamp"}
	}
	if err != nil {
		return nil, err
	}
	tsIdx, histIdx, predIdx, confIdx := -1, -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "timestamp":
			tsIdx = i
		case "historical":
			histIdx = i
		case "predicted":
			predIdx = i
		case "confidence":
			confIdx = i
		}
	}
	for col, idx := range map[string]int{
		"timestamp": tsIdx, "historical": histIdx,
		"predicted": predIdx, "confidence": confIdx,
	} {
		if idx == -1 {
			return nil, &FormatError{Column: col}
		}
	}

	var points []forecast.ForecastPoint
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		p := forecast.ForecastPoint{Timestamp: fieldString(row, tsIdx)}
		if v, ok := fieldFloat(row, histIdx); ok {
			p.Historical = &v
		}
		if v, ok := fieldFloat(row, predIdx); ok {
			p.Predicted = v
		}
		if v, ok := fieldFloat(row, confIdx); ok {
			p.Confidence = v
		}
		points = append(points, p)
	}
	return points, nil
}

func fieldString(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func fieldFloat(row []string, idx int) (float64, bool) {
	s := fieldString(row, idx)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
