// Package report renders evaluation submittal documents as PDF.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	vs "vent_sizing"
)

const (
	headerFill = 230
	rowHeight  = 6.0
)

// Submittal renders a single evaluation as a one or two page PDF submittal
// sheet covering the system inputs, per scenario draft results and the
// selected equipment.
func Submittal(ev vs.Evaluation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Vent Sizing Submittal", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Vent System Sizing Submittal")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Evaluation %s    %s", ev.ID, ev.CreatedAt.Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	writeAppliances(pdf, ev.Request)
	writeAmbient(pdf, ev.Request.Ambient)
	writeScenarios(pdf, ev.Scenarios, ev.WorstCase)
	writeSelection(pdf, ev.Selection)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render submittal: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFillColor(headerFill, headerFill, headerFill)
	pdf.SetFont("Helvetica", "B", 9)
	for i, l := range labels {
		pdf.CellFormat(widths[i], rowHeight, l, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
}

func writeAppliances(pdf *gofpdf.Fpdf, req vs.SystemRequest) {
	sectionTitle(pdf, "Connected Appliances")
	widths := []float64{15, 35, 30, 25, 25, 25}
	tableHeader(pdf, widths, []string{"#", "Category", "Fuel", "MBH", "CO2 %", "Flue F"})
	for i, a := range req.Appliances {
		co2 := "default"
		if a.CO2Percent > 0 {
			co2 = fmt.Sprintf("%.1f", a.CO2Percent)
		}
		flue := "default"
		if a.FlueTempF > 0 {
			flue = fmt.Sprintf("%.0f", a.FlueTempF)
		}
		cells := []string{
			fmt.Sprintf("%d", i+1),
			string(a.Category),
			string(a.Fuel),
			fmt.Sprintf("%.0f", a.InputMBH),
			co2,
			flue,
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], rowHeight, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writeAmbient(pdf *gofpdf.Fpdf, amb vs.AmbientConditions) {
	sectionTitle(pdf, "Site Conditions")
	pdf.Cell(0, 5, fmt.Sprintf("Outdoor %.0f F    Barometric %.2f in Hg",
		amb.OutdoorTempF, amb.BarometricInHg))
	pdf.Ln(8)
}

func writeScenarios(pdf *gofpdf.Fpdf, scenarios []vs.CalculationResult, worst vs.ScenarioTag) {
	sectionTitle(pdf, "Firing Scenarios")
	widths := []float64{45, 30, 30, 35, 35}
	tableHeader(pdf, widths, []string{"Scenario", "Flow CFM", "Flue F", "Loss in w.c.", "Available in w.c."})
	for _, sc := range scenarios {
		name := string(sc.Scenario)
		if sc.Scenario == worst {
			name += " *"
		}
		var loss float64
		if sc.Connector != nil {
			loss += sc.Connector.TotalLossInWC
		}
		if sc.Manifold != nil {
			loss += sc.Manifold.TotalLossInWC
		}
		cells := []string{
			name,
			fmt.Sprintf("%.0f", sc.TotalCFM),
			fmt.Sprintf("%.0f", sc.MixedFlueTempF),
			fmt.Sprintf("%.3f", loss),
			fmt.Sprintf("%.3f", sc.AvailableDraftInWC),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], rowHeight, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, "* governing worst case scenario")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
}

func writeSelection(pdf *gofpdf.Fpdf, sel vs.SelectionResult) {
	sectionTitle(pdf, "Selected Equipment")

	if sel.PoweredInducer {
		if sel.InducerModel != "" {
			pdf.Cell(0, 5, fmt.Sprintf("Draft inducer: %s series %s, rated %.2f in w.c. at %.0f CFM",
				sel.InducerSeries, sel.InducerModel, sel.RequiredPressureInWC, sel.RequiredCFM))
		} else if sel.NoFit != nil {
			pdf.Cell(0, 5, fmt.Sprintf("Draft inducer: NO FIT (series tried: %s)",
				strings.Join(sel.NoFit.SeriesTried, ", ")))
		}
		pdf.Ln(6)
	} else {
		pdf.Cell(0, 5, "Draft inducer: not required, natural draft is adequate")
		pdf.Ln(6)
	}
	if sel.OverdraftControl {
		pdf.Cell(0, 5, "Overdraft control: modulating control required")
		pdf.Ln(6)
	}
	if len(sel.BarometricDampers) > 0 {
		for _, d := range sel.BarometricDampers {
			pdf.Cell(0, 5, fmt.Sprintf("Barometric damper: appliance %d, %.0f in", d.ApplianceIndex+1, d.DiameterIn))
			pdf.Ln(6)
		}
	}
	if sel.Controller != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Controller: %s", sel.Controller))
		pdf.Ln(6)
	}
	if sel.SupplyFanModel != "" {
		pdf.Cell(0, 5, fmt.Sprintf("Combustion air supply fan: %s", sel.SupplyFanModel))
		pdf.Ln(6)
	}

	if len(sel.InducerCurve) > 0 {
		pdf.Ln(2)
		sectionTitle(pdf, "Inducer Performance Curve")
		widths := []float64{35, 35}
		tableHeader(pdf, widths, []string{"Flow CFM", "Pressure in w.c."})
		for _, pt := range sel.InducerCurve {
			pdf.CellFormat(widths[0], rowHeight, fmt.Sprintf("%.0f", pt.FlowCFM), "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], rowHeight, fmt.Sprintf("%.2f", pt.PressureInWC), "1", 0, "L", false, 0, "")
			pdf.Ln(-1)
		}
	}

	if len(sel.GuardRails) > 0 {
		pdf.Ln(2)
		sectionTitle(pdf, "Applied Rules")
		for _, g := range sel.GuardRails {
			pdf.MultiCell(0, 5, fmt.Sprintf("%s: %s", g.Rule, g.Rationale), "", "L", false)
		}
	}
}
