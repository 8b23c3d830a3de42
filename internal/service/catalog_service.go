package service

import (
	"context"
	"fmt"
	"sync"

	vs "vent_sizing"
	"vent_sizing/internal/catalog"
	"vent_sizing/internal/repository"
)

// CatalogHolder guards the current catalog so imports can swap it while
// evaluations keep reading a consistent snapshot.
type CatalogHolder struct {
	mu  sync.RWMutex
	cat *catalog.Catalog
}

func NewCatalogHolder(cat *catalog.Catalog) *CatalogHolder {
	return &CatalogHolder{cat: cat}
}

func (h *CatalogHolder) Get() *catalog.Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cat
}

func (h *CatalogHolder) Swap(cat *catalog.Catalog) {
	h.mu.Lock()
	h.cat = cat
	h.mu.Unlock()
}

type CatalogService struct {
	repo   repository.CatalogRepo
	holder *CatalogHolder
}

func NewCatalogService(repo repository.CatalogRepo, holder *CatalogHolder) *CatalogService {
	return &CatalogService{repo: repo, holder: holder}
}

var _ CatalogAccess = (*CatalogService)(nil)

// Curves lists every inducer curve in priority order.
func (s *CatalogService) Curves() []vs.FanCurve {
	return s.holder.Get().Models()
}

// Series returns the product families in selection priority order.
func (s *CatalogService) Series() []catalog.Series {
	return s.holder.Get().InducerSeries()
}

// SeriesModels returns one family's models ascending by capacity.
func (s *CatalogService) SeriesModels(series string) []string {
	return s.holder.Get().SeriesModels(series)
}

// ImportXLSX loads a workbook, validates it as a complete catalog, persists
// it and swaps it in as the active catalog. Returns the curve count.
// The old catalog stays active if any step fails.
func (s *CatalogService) ImportXLSX(ctx context.Context, path string) (int, error) {
	curves, supply, err := catalog.LoadXLSX(path)
	if err != nil {
		return 0, fmt.Errorf("load workbook: %w", err)
	}
	cat, err := catalog.New(curves, supply)
	if err != nil {
		return 0, fmt.Errorf("validate imported catalog: %w", err)
	}
	if err := s.repo.ReplaceCurves(ctx, curves); err != nil {
		return 0, fmt.Errorf("persist imported catalog: %w", err)
	}
	s.holder.Swap(cat)
	return len(curves), nil
}
