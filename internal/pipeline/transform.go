package pipeline

import (
	"github.com/couchcryptid/obs-shots2cnv/internal/domain"
)

// StationTransformer resolves shot files against the station table and builds
// the pseudo-event written for each station.
type StationTransformer struct {
	stations    []domain.StationLocation
	phaseWeight string
}

// NewTransformer creates a StationTransformer that stamps phaseWeight on every arrival.
func NewTransformer(stations []domain.StationLocation, phaseWeight string) *StationTransformer {
	return &StationTransformer{
		stations:    stations,
		phaseWeight: phaseWeight,
	}
}

// Resolve finds the station a shot file belongs to.
func (t *StationTransformer) Resolve(file domain.ShotFile) (domain.StationLocation, error) {
	return domain.FindStation(t.stations, file.StationCode)
}

// Transform assembles the CNV event for a resolved station and its arrivals.
func (t *StationTransformer) Transform(station domain.StationLocation, file domain.ShotFile, arrivals []domain.ShotArrival) domain.CnvEvent {
	return domain.NewCnvEvent(station, arrivals, t.phaseWeight, file.Path)
}
