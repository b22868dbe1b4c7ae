package domain

import "time"

// StationLocation is one row of the station table.
type StationLocation struct {
	Code      string  `json:"code"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	DepthM    float64 `json:"depth_m"`
}

// DepthKm returns the instrument depth in kilometres.
func (s StationLocation) DepthKm() float64 {
	return s.DepthM / 1000.0
}

// ShotArrival is one line of a per-station shot file.
type ShotArrival struct {
	ShotID       string  `json:"shot_id"`
	OffsetKm     float64 `json:"offset_km"`
	TravelTimeMs float64 `json:"travel_time_ms"`
}

// TravelTimeSeconds returns the pick in seconds, as written to CNV.
func (a ShotArrival) TravelTimeSeconds() float64 {
	return a.TravelTimeMs / 1000.0
}

// ShotFile identifies a "<code>.time" file found in the input directory.
type ShotFile struct {
	Path        string
	Name        string
	StationCode string
}

// CnvEvent is the pseudo-event written for one station: the station acts as the
// source and every shot it recorded acts as a receiver.
type CnvEvent struct {
	Station     StationLocation `json:"station"`
	Arrivals    []ShotArrival   `json:"arrivals"`
	PhaseWeight string          `json:"phase_weight"`
	SourcePath  string          `json:"source_path"`
	ConvertedAt time.Time       `json:"converted_at"`
}

// NewCnvEvent assembles an event for a station and stamps it with the current time.
func NewCnvEvent(station StationLocation, arrivals []ShotArrival, phaseWeight, sourcePath string) CnvEvent {
	return CnvEvent{
		Station:     station,
		Arrivals:    arrivals,
		PhaseWeight: phaseWeight,
		SourcePath:  sourcePath,
		ConvertedAt: clock.Now(),
	}
}
