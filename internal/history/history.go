// Package history presents the scan store as an ordered history and
// owns creation of new records.
package history

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kozaktomas/glow-scan/internal/ai"
	"github.com/kozaktomas/glow-scan/internal/store"
)

// Service wraps the scan store with ordering and record creation.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// Save records a completed analysis as a new scan and returns it.
// The image is the data-URI form of the analyzed photo.
func (s *Service) Save(ctx context.Context, image string, result ai.AnalysisResult) (*store.StoredScan, error) {
	scan := &store.StoredScan{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
		Image:     image,
		Result:    result,
	}
	if err := s.store.Put(ctx, scan); err != nil {
		return nil, err
	}
	return scan, nil
}

// History returns all scans sorted newest first. Timestamp ties are
// broken by id so the order stays deterministic.
func (s *Service) History(ctx context.Context) ([]store.StoredScan, error) {
	scans, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(scans, func(i, j int) bool {
		if scans[i].Timestamp != scans[j].Timestamp {
			return scans[i].Timestamp > scans[j].Timestamp
		}
		return scans[i].ID < scans[j].ID
	})
	return scans, nil
}

// Timeline returns all scans sorted oldest first, the order the progress
// engine expects.
func (s *Service) Timeline(ctx context.Context) ([]store.StoredScan, error) {
	scans, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(scans, func(i, j int) bool {
		if scans[i].Timestamp != scans[j].Timestamp {
			return scans[i].Timestamp < scans[j].Timestamp
		}
		return scans[i].ID < scans[j].ID
	})
	return scans, nil
}

// Delete removes one scan. Deleting an unknown id is not an error;
// callers refresh their own views afterwards.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}
