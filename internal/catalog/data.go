package catalog

import (
	vs "vent_sizing"
)

// seedCurve builds a FanCurve from (flow CFM, pressure in w.c.) pairs.
func seedCurve(series, model string, samples ...[2]float64) vs.FanCurve {
	pts := make([]vs.FanCurvePoint, 0, len(samples))
	for _, s := range samples {
		pts = append(pts, vs.FanCurvePoint{FlowCFM: s[0], PressureInWC: s[1]})
	}
	return vs.FanCurve{Model: model, Series: series, Points: pts}
}

// seedCurves are the published performance samples shipped with the binary.
// They seed an empty catalog database and back the unit tests; production
// deployments may replace them from the xlsx or sqlite sources.
var seedCurves = []vs.FanCurve{
	// TRV: true inline, 80-2675 CFM, to 3.0 in w.c.
	seedCurve("TRV", "TRV002", [2]float64{80, 1.10}, [2]float64{120, 0.90}, [2]float64{160, 0.65}, [2]float64{205, 0.35}, [2]float64{250, 0.10}),
	seedCurve("TRV", "TRV004", [2]float64{120, 1.30}, [2]float64{190, 1.05}, [2]float64{260, 0.75}, [2]float64{330, 0.40}, [2]float64{400, 0.12}),
	seedCurve("TRV", "TRV011", [2]float64{210, 1.55}, [2]float64{330, 1.25}, [2]float64{455, 0.90}, [2]float64{580, 0.50}, [2]float64{700, 0.15}),
	seedCurve("TRV", "TRV018", [2]float64{285, 1.80}, [2]float64{450, 1.45}, [2]float64{620, 1.05}, [2]float64{785, 0.55}, [2]float64{950, 0.15}),
	seedCurve("TRV", "TRV025", [2]float64{360, 2.05}, [2]float64{570, 1.65}, [2]float64{780, 1.20}, [2]float64{990, 0.65}, [2]float64{1200, 0.18}),
	seedCurve("TRV", "TRV035", [2]float64{450, 2.30}, [2]float64{710, 1.85}, [2]float64{975, 1.35}, [2]float64{1240, 0.75}, [2]float64{1500, 0.20}),
	seedCurve("TRV", "TRV050", [2]float64{555, 2.60}, [2]float64{880, 2.10}, [2]float64{1200, 1.50}, [2]float64{1525, 0.85}, [2]float64{1850, 0.22}),
	seedCurve("TRV", "TRV075", [2]float64{690, 2.85}, [2]float64{1090, 2.30}, [2]float64{1495, 1.65}, [2]float64{1900, 0.95}, [2]float64{2300, 0.25}),
	seedCurve("TRV", "TRV090", [2]float64{800, 3.00}, [2]float64{1270, 2.45}, [2]float64{1740, 1.75}, [2]float64{2210, 1.00}, [2]float64{2675, 0.28}),

	// T9F: 90-degree inline, 200-6090 CFM, to 4.0 in w.c.
	seedCurve("T9F", "T9F004", [2]float64{200, 1.60}, [2]float64{265, 1.30}, [2]float64{325, 0.95}, [2]float64{390, 0.55}, [2]float64{450, 0.15}),
	seedCurve("T9F", "T9F008", [2]float64{240, 1.90}, [2]float64{380, 1.55}, [2]float64{520, 1.10}, [2]float64{660, 0.60}, [2]float64{800, 0.18}),
	seedCurve("T9F", "T9F015", [2]float64{360, 2.25}, [2]float64{570, 1.80}, [2]float64{780, 1.30}, [2]float64{990, 0.70}, [2]float64{1200, 0.20}),
	seedCurve("T9F", "T9F025", [2]float64{510, 2.60}, [2]float64{810, 2.10}, [2]float64{1105, 1.50}, [2]float64{1405, 0.85}, [2]float64{1700, 0.22}),
	seedCurve("T9F", "T9F035", [2]float64{660, 2.95}, [2]float64{1045, 2.40}, [2]float64{1430, 1.70}, [2]float64{1815, 0.95}, [2]float64{2200, 0.25}),
	seedCurve("T9F", "T9F050", [2]float64{900, 3.30}, [2]float64{1425, 2.70}, [2]float64{1950, 1.95}, [2]float64{2475, 1.10}, [2]float64{3000, 0.28}),
	seedCurve("T9F", "T9F075", [2]float64{1170, 3.60}, [2]float64{1850, 2.95}, [2]float64{2535, 2.10}, [2]float64{3215, 1.20}, [2]float64{3900, 0.30}),
	seedCurve("T9F", "T9F100", [2]float64{1440, 3.85}, [2]float64{2280, 3.15}, [2]float64{3120, 2.25}, [2]float64{3960, 1.30}, [2]float64{4800, 0.32}),
	seedCurve("T9F", "T9F150", [2]float64{1825, 4.00}, [2]float64{2890, 3.30}, [2]float64{3955, 2.40}, [2]float64{5020, 1.35}, [2]float64{6090, 0.35}),

	// CBX: termination mount, 215-17000 CFM, to 4.0 in w.c.
	seedCurve("CBX", "CBX007", [2]float64{215, 1.70}, [2]float64{385, 1.40}, [2]float64{555, 1.00}, [2]float64{730, 0.55}, [2]float64{900, 0.15}),
	seedCurve("CBX", "CBX013", [2]float64{410, 2.10}, [2]float64{730, 1.70}, [2]float64{1055, 1.20}, [2]float64{1375, 0.65}, [2]float64{1700, 0.18}),
	seedCurve("CBX", "CBX022", [2]float64{625, 2.50}, [2]float64{1120, 2.00}, [2]float64{1615, 1.45}, [2]float64{2105, 0.80}, [2]float64{2600, 0.20}),
	seedCurve("CBX", "CBX025", [2]float64{770, 2.80}, [2]float64{1375, 2.25}, [2]float64{1985, 1.60}, [2]float64{2590, 0.90}, [2]float64{3200, 0.22}),
	seedCurve("CBX", "CBX035", [2]float64{1200, 3.20}, [2]float64{2150, 2.60}, [2]float64{3100, 1.85}, [2]float64{4050, 1.05}, [2]float64{5000, 0.25}),
	seedCurve("CBX", "CBX050", [2]float64{2160, 3.60}, [2]float64{3870, 2.95}, [2]float64{5580, 2.10}, [2]float64{7290, 1.20}, [2]float64{9000, 0.28}),
	seedCurve("CBX", "CBX075", [2]float64{4080, 4.00}, [2]float64{7310, 3.25}, [2]float64{10540, 2.35}, [2]float64{13770, 1.30}, [2]float64{17000, 0.30}),
}

// seedSupplyFans carry flow-only ratings for combustion-air sizing.
var seedSupplyFans = []SupplyFan{
	{Model: "PRIO-0800", Series: "PRIO", MaxCFM: 800},
	{Model: "PRIO-1600", Series: "PRIO", MaxCFM: 1600},
	{Model: "PRIO-3000", Series: "PRIO", MaxCFM: 3000},
	{Model: "TAF-4500", Series: "TAF", MaxCFM: 4500},
	{Model: "TAF-6000", Series: "TAF", MaxCFM: 6000},
}

// Default returns the built-in catalog. The seed data is valid by
// construction, so the error path is unreachable.
func Default() *Catalog {
	c, err := New(seedCurves, seedSupplyFans)
	if err != nil {
		panic(err)
	}
	return c
}

// SeedCurves exposes the built-in curves for database seeding.
func SeedCurves() []vs.FanCurve {
	out := make([]vs.FanCurve, len(seedCurves))
	copy(out, seedCurves)
	return out
}

// SeedSupplyFans exposes the built-in supply fans for database seeding.
func SeedSupplyFans() []SupplyFan {
	out := make([]SupplyFan, len(seedSupplyFans))
	copy(out, seedSupplyFans)
	return out
}
