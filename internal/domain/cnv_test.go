package domain

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeaderSTA1 = "STA1121212 1212 12.12 10.5000N 120.2500W   1.50   9.99      0      0.00\n"

var testStation = StationLocation{Code: "STA1", Latitude: 10.5, Longitude: -120.25, DepthM: 1500}

func makeArrivals(n int) []ShotArrival {
	arrivals := make([]ShotArrival, n)
	for i := range arrivals {
		arrivals[i] = ShotArrival{ShotID: fmt.Sprintf("%d", 100+i), TravelTimeMs: float64(1000 * (i + 1))}
	}
	return arrivals
}

func TestHemispheres(t *testing.T) {
	tests := []struct {
		name   string
		lat    float64
		lon    float64
		wantNS string
		wantEW string
	}{
		{"north east", 10, 20, "N", "E"},
		{"south west", -10, -20, "S", "W"},
		{"north west", 0.0001, -0.0001, "N", "W"},
		{"zero maps to south west", 0, 0, "S", "W"},
		{"negative zero", math.Copysign(0, -1), math.Copysign(0, -1), "S", "W"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, ew := Hemispheres(tt.lat, tt.lon)
			assert.Equal(t, tt.wantNS, ns)
			assert.Equal(t, tt.wantEW, ew)
		})
	}
}

func TestFormatOriginLine(t *testing.T) {
	t.Run("reference station", func(t *testing.T) {
		assert.Equal(t, testHeaderSTA1, FormatOriginLine(testStation))
	})

	t.Run("southern eastern station", func(t *testing.T) {
		s := StationLocation{Code: "OBS02", Latitude: -41.23456, Longitude: 174.5, DepthM: 2155}
		assert.Equal(t, "OBS02121212 1212 12.12 41.2346S 174.5000E   2.15   9.99      0      0.00\n", FormatOriginLine(s))
	})

	t.Run("zero coordinates written as S and W without sign", func(t *testing.T) {
		s := StationLocation{Code: "Z", Latitude: math.Copysign(0, -1), Longitude: 0}
		assert.Equal(t, "Z121212 1212 12.12  0.0000S   0.0000W   0.00   9.99      0      0.00\n", FormatOriginLine(s))
	})
}

func TestFormatArrival(t *testing.T) {
	tests := []struct {
		name     string
		arrival  ShotArrival
		pw       string
		expected string
	}{
		{"reference shot", ShotArrival{ShotID: "SHOT1", TravelTimeMs: 12345.0}, "P0", "SHOT1P0 12.35"},
		{"short id padded", ShotArrival{ShotID: "7", TravelTimeMs: 4321}, "P1", "7   P1  4.32"},
		{"four char id", ShotArrival{ShotID: "1024", TravelTimeMs: 999}, "P0", "1024P0  1.00"},
		{"one char phase padded", ShotArrival{ShotID: "12", TravelTimeMs: 100}, "P", "12  P   0.10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatArrival(tt.arrival, tt.pw))
		})
	}
}

func TestAppendCNV_EndToEndSample(t *testing.T) {
	e := CnvEvent{
		Station:     testStation,
		Arrivals:    []ShotArrival{{ShotID: "SHOT1", TravelTimeMs: 12345.0}},
		PhaseWeight: "P0",
	}

	got := string(AppendCNV(nil, e))

	assert.Equal(t, testHeaderSTA1+"SHOT1P0 12.35\n\n", got)
}

func TestAppendCNV_Grouping(t *testing.T) {
	for _, n := range []int{1, 5, 6, 7, 12, 13} {
		t.Run(fmt.Sprintf("%d arrivals", n), func(t *testing.T) {
			e := CnvEvent{Station: testStation, Arrivals: makeArrivals(n), PhaseWeight: "P0"}

			out := string(AppendCNV(nil, e))
			require.True(t, strings.HasPrefix(out, testHeaderSTA1))
			require.True(t, strings.HasSuffix(out, "\n\n"))

			body := strings.TrimSuffix(strings.TrimPrefix(out, testHeaderSTA1), "\n\n")
			lines := strings.Split(body, "\n")
			assert.Len(t, lines, ArrivalLineCount(n))

			last := n % ArrivalsPerLine
			if last == 0 {
				last = ArrivalsPerLine
			}
			for i, line := range lines {
				want := ArrivalsPerLine
				if i == len(lines)-1 {
					want = last
				}
				assert.Len(t, line, want*12, "line %d", i)
			}
		})
	}
}

func TestAppendCNV_NoArrivals(t *testing.T) {
	e := CnvEvent{Station: testStation, PhaseWeight: "P0"}

	assert.Empty(t, AppendCNV(nil, e))
}

func TestAppendCNV_Idempotent(t *testing.T) {
	e := CnvEvent{Station: testStation, Arrivals: makeArrivals(9), PhaseWeight: "P0"}

	assert.Equal(t, AppendCNV(nil, e), AppendCNV(nil, e))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCNV(t *testing.T) {
	e := CnvEvent{Station: testStation, Arrivals: makeArrivals(2), PhaseWeight: "P0"}

	var buf bytes.Buffer
	n, err := WriteCNV(&buf, e)
	require.NoError(t, err)
	assert.Equal(t, buf.Len(), n)
	assert.Equal(t, testHeaderSTA1+"100 P0  1.00101 P0  2.00\n\n", buf.String())

	_, err = WriteCNV(failingWriter{}, e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write cnv block for STA1")

	n, err = WriteCNV(failingWriter{}, CnvEvent{Station: testStation})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestArrivalLineCount(t *testing.T) {
	assert.Equal(t, 0, ArrivalLineCount(0))
	assert.Equal(t, 1, ArrivalLineCount(1))
	assert.Equal(t, 1, ArrivalLineCount(6))
	assert.Equal(t, 2, ArrivalLineCount(7))
	assert.Equal(t, 3, ArrivalLineCount(18))
}

func TestDisplayCoordinates(t *testing.T) {
	assert.Equal(t, "10.5000N", testStation.DisplayLatitude())
	assert.Equal(t, "120.2500W", testStation.DisplayLongitude())
}

func TestNewCnvEvent_UsesClock(t *testing.T) {
	fixed := time.Date(2024, 4, 26, 15, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	e := NewCnvEvent(testStation, makeArrivals(1), "P0", "/tmp/STA1.time")

	assert.Equal(t, fixed, e.ConvertedAt)
	assert.Equal(t, "/tmp/STA1.time", e.SourcePath)
	assert.Equal(t, "P0", e.PhaseWeight)
	assert.Equal(t, testStation, e.Station)
}
