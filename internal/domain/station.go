package domain

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// stationFields is the minimum column count of a station table line.
const stationFields = 4

// LoadStationTable reads a whitespace-delimited station table from path.
func LoadStationTable(path string) ([]StationLocation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open station table: %w", err)
	}
	defer f.Close()

	table, err := ParseStationTable(f)
	if err != nil {
		return nil, fmt.Errorf("load station table %s: %w", path, err)
	}
	return table, nil
}

// ParseStationTable parses station rows in input order. Every non-blank line must
// carry at least code, latitude, longitude and depth; extra columns are ignored.
func ParseStationTable(r io.Reader) ([]StationLocation, error) {
	var table []StationLocation
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		station, err := parseStationLine(lineNo, text, fields)
		if err != nil {
			return nil, err
		}
		table = append(table, station)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read station table: %w", err)
	}
	return table, nil
}

func parseStationLine(lineNo int, text string, fields []string) (StationLocation, error) {
	if len(fields) < stationFields {
		return StationLocation{}, &MalformedStationTableError{
			Line:   lineNo,
			Text:   text,
			Reason: fmt.Sprintf("want at least %d fields, got %d", stationFields, len(fields)),
		}
	}

	var values [3]float64
	names := [3]string{"latitude", "longitude", "depth"}
	for i := range values {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return StationLocation{}, &MalformedStationTableError{
				Line:   lineNo,
				Text:   text,
				Reason: "invalid " + names[i],
				Err:    err,
			}
		}
		values[i] = v
	}

	return StationLocation{
		Code:      fields[0],
		Latitude:  values[0],
		Longitude: values[1],
		DepthM:    values[2],
	}, nil
}

// FindStation returns the first entry whose code matches exactly.
// Duplicate codes later in the table are never consulted.
func FindStation(table []StationLocation, code string) (StationLocation, error) {
	for _, s := range table {
		if s.Code == code {
			return s, nil
		}
	}
	return StationLocation{}, &StationNotFoundError{Code: code}
}
