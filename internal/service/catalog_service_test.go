package service

import (
	"context"
	"strings"
	"testing"

	vs "vent_sizing"
	"vent_sizing/internal/catalog"
)

type fakeCatalogRepo struct {
	replaced [][]vs.FanCurve
	err      error
}

func (f *fakeCatalogRepo) LoadCurves(ctx context.Context) ([]vs.FanCurve, error) {
	return nil, f.err
}

func (f *fakeCatalogRepo) ReplaceCurves(ctx context.Context, curves []vs.FanCurve) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = append(f.replaced, curves)
	return nil
}

func TestCatalogService_ReadsFromHolder(t *testing.T) {
	t.Parallel()

	holder := NewCatalogHolder(catalog.Default())
	svc := NewCatalogService(&fakeCatalogRepo{}, holder)

	curves := svc.Curves()
	if len(curves) == 0 {
		t.Fatal("expected seeded curves")
	}
	series := svc.Series()
	if len(series) != 3 || series[0].Name != "TRV" {
		t.Fatalf("unexpected series order: %+v", series)
	}
	models := svc.SeriesModels("TRV")
	if len(models) == 0 {
		t.Fatal("expected TRV models")
	}
}

func TestCatalogService_ImportMissingFile(t *testing.T) {
	t.Parallel()

	holder := NewCatalogHolder(catalog.Default())
	repo := &fakeCatalogRepo{}
	svc := NewCatalogService(repo, holder)

	before := holder.Get()
	_, err := svc.ImportXLSX(context.Background(), "/does/not/exist.xlsx")
	if err == nil || !strings.Contains(err.Error(), "load workbook") {
		t.Fatalf("expected load error, got %v", err)
	}
	if len(repo.replaced) != 0 {
		t.Error("failed import must not persist")
	}
	if holder.Get() != before {
		t.Error("failed import must not swap the catalog")
	}
}
