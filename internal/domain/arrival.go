package domain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	shotIDColumn     = 0
	offsetColumn     = 4
	travelTimeColumn = 6
)

// ParseArrivals reads every shot line of a "<code>.time" file in order.
// Blank lines are skipped; an input with no shot lines yields an empty slice.
func ParseArrivals(r io.Reader) ([]ShotArrival, error) {
	var arrivals []ShotArrival
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		arrival, err := parseArrivalLine(lineNo, text, fields)
		if err != nil {
			return nil, err
		}
		arrivals = append(arrivals, arrival)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read arrivals: %w", err)
	}
	return arrivals, nil
}

func parseArrivalLine(lineNo int, text string, fields []string) (ShotArrival, error) {
	if len(fields) <= travelTimeColumn {
		return ShotArrival{}, &MalformedArrivalError{
			Line:   lineNo,
			Text:   text,
			Reason: fmt.Sprintf("want at least %d fields, got %d", travelTimeColumn+1, len(fields)),
		}
	}

	travelTime, err := strconv.ParseFloat(fields[travelTimeColumn], 64)
	if err != nil {
		return ShotArrival{}, &MalformedArrivalError{
			Line:   lineNo,
			Text:   text,
			Reason: "invalid travel time",
			Err:    err,
		}
	}

	return ShotArrival{
		ShotID:       fields[shotIDColumn],
		OffsetKm:     parseFloatOrZero(fields[offsetColumn]),
		TravelTimeMs: travelTime,
	}, nil
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
// Used for informational columns that never reach the CNV output.
func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
