package pipeline

import (
	"context"
	"errors"

	"github.com/couchcryptid/obs-shots2cnv/internal/domain"
)

// MultiLoader fans events out to several loaders in order.
// If one loader fails, the remaining loaders still receive the event.
type MultiLoader struct {
	loaders []EventLoader
}

// NewMultiLoader creates a MultiLoader over the given loaders.
func NewMultiLoader(loaders ...EventLoader) *MultiLoader {
	return &MultiLoader{loaders: loaders}
}

// Load delivers the event to every wrapped loader and joins their errors.
func (m *MultiLoader) Load(ctx context.Context, e domain.CnvEvent) error {
	var errs []error
	for _, l := range m.loaders {
		if err := l.Load(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
