package catalog

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, withSupply bool) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if _, err := f.NewSheet(curvesSheet); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	curveRows := [][]interface{}{
		{"series", "model", "flow_cfm", "pressure_in_wc"},
		{"TRV", "TRV002", 80, 1.10},
		{"TRV", "TRV002", 160, 0.65},
		{"TRV", "TRV002", 250, 0.10},
		{"T9F", "T9F004", 200, 1.60},
		{"T9F", "T9F004", 450, 0.15},
	}
	for i, row := range curveRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(curvesSheet, cell, &row); err != nil {
			t.Fatalf("set curve row: %v", err)
		}
	}

	if withSupply {
		if _, err := f.NewSheet(supplyFansSheet); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		supplyRows := [][]interface{}{
			{"series", "model", "max_cfm"},
			{"PRIO", "PRIO-0800", 800},
		}
		for i, row := range supplyRows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(supplyFansSheet, cell, &row); err != nil {
				t.Fatalf("set supply row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeTestWorkbook(t, true)
	curves, supply, err := LoadXLSX(path)
	if err != nil {
		t.Fatalf("LoadXLSX: %v", err)
	}
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	if curves[0].Model != "TRV002" || curves[0].Series != "TRV" {
		t.Errorf("first curve = %s/%s, want TRV/TRV002", curves[0].Series, curves[0].Model)
	}
	if len(curves[0].Points) != 3 {
		t.Errorf("TRV002 has %d points, want 3", len(curves[0].Points))
	}
	if curves[0].Points[1].FlowCFM != 160 || curves[0].Points[1].PressureInWC != 0.65 {
		t.Errorf("TRV002 point 1 = %+v", curves[0].Points[1])
	}
	if len(supply) != 1 || supply[0].MaxCFM != 800 {
		t.Errorf("supply fans = %+v, want one 800 CFM fan", supply)
	}

	// The loaded data must satisfy catalog validation end to end.
	if _, err := New(curves, supply); err != nil {
		t.Errorf("loaded curves failed validation: %v", err)
	}
}

func TestLoadXLSXFallsBackToSeedSupplyFans(t *testing.T) {
	path := writeTestWorkbook(t, false)
	_, supply, err := LoadXLSX(path)
	if err != nil {
		t.Fatalf("LoadXLSX: %v", err)
	}
	if len(supply) != len(seedSupplyFans) {
		t.Errorf("got %d supply fans, want the %d built-ins", len(supply), len(seedSupplyFans))
	}
}

func TestLoadXLSXMissingFile(t *testing.T) {
	if _, _, err := LoadXLSX(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("expected an error for a missing workbook")
	}
}
