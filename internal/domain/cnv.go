package domain

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// Fixed pseudo-event values. VELEST needs them present but they carry no meaning
// for an instrument treated as a source.
const (
	DummyOriginTime   = "121212 1212 12.12"
	DummyMagnitude    = 9.99
	DummyAzimuthalGap = 0.00
	DummyRMSResidual  = 0.00

	// ArrivalsPerLine is the number of phase readings VELEST reads from one CNV line.
	ArrivalsPerLine = 6
)

// Hemispheres returns the CNV hemisphere letters for a coordinate pair.
// Zero is not positive, so the equator maps to "S" and the prime meridian to "W".
func Hemispheres(lat, lon float64) (ns, ew string) {
	ns, ew = "S", "W"
	if lat > 0 {
		ns = "N"
	}
	if lon > 0 {
		ew = "E"
	}
	return ns, ew
}

// FormatOriginLine renders the pseudo-event header for a station, newline included.
func FormatOriginLine(s StationLocation) string {
	ns, ew := Hemispheres(s.Latitude, s.Longitude)
	return fmt.Sprintf("%s%s %7.4f%s %8.4f%s %6.2f %6.2f %6g %9.2f\n",
		s.Code, DummyOriginTime,
		math.Abs(s.Latitude), ns,
		math.Abs(s.Longitude), ew,
		s.DepthKm(), DummyMagnitude, DummyAzimuthalGap, DummyRMSResidual,
	)
}

// FormatArrival renders one 12-column phase reading. Shot IDs longer than four
// characters are written in full, which shifts the rest of the line.
func FormatArrival(a ShotArrival, phaseWeight string) string {
	return fmt.Sprintf("%-4s%-2s%6.2f", a.ShotID, phaseWeight, a.TravelTimeSeconds())
}

// AppendCNV appends the complete CNV block for an event: the origin line, the
// phase readings six per line, and a trailing blank separator line. An event
// without arrivals produces nothing.
func AppendCNV(buf []byte, e CnvEvent) []byte {
	if len(e.Arrivals) == 0 {
		return buf
	}
	buf = append(buf, FormatOriginLine(e.Station)...)
	for i, a := range e.Arrivals {
		buf = append(buf, FormatArrival(a, e.PhaseWeight)...)
		n := i + 1
		if n%ArrivalsPerLine == 0 || n == len(e.Arrivals) {
			buf = append(buf, '\n')
		}
	}
	return append(buf, '\n')
}

// WriteCNV writes the CNV block for an event in a single Write call and reports
// the number of bytes written.
func WriteCNV(w io.Writer, e CnvEvent) (int, error) {
	block := AppendCNV(nil, e)
	if len(block) == 0 {
		return 0, nil
	}
	n, err := w.Write(block)
	if err != nil {
		return n, fmt.Errorf("write cnv block for %s: %w", e.Station.Code, err)
	}
	return n, nil
}

// ArrivalLineCount returns how many phase lines n arrivals occupy.
func ArrivalLineCount(n int) int {
	return (n + ArrivalsPerLine - 1) / ArrivalsPerLine
}

// DisplayLatitude renders a latitude the way the CNV header does, e.g. "10.5000N".
func (s StationLocation) DisplayLatitude() string {
	ns, _ := Hemispheres(s.Latitude, s.Longitude)
	return strconv.FormatFloat(math.Abs(s.Latitude), 'f', 4, 64) + ns
}

// DisplayLongitude renders a longitude the way the CNV header does, e.g. "120.2500W".
func (s StationLocation) DisplayLongitude() string {
	_, ew := Hemispheres(s.Latitude, s.Longitude)
	return strconv.FormatFloat(math.Abs(s.Longitude), 'f', 4, 64) + ew
}
