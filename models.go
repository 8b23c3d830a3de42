package vent_sizing

import "time"

// FuelType identifies the fired fuel; it selects the combustion M-factor
// coefficients used to derive flue-gas mass flow.
type FuelType string

const (
	FuelNaturalGas FuelType = "NATURAL_GAS"
	FuelPropane    FuelType = "PROPANE"
	FuelOil        FuelType = "OIL"
)

// ApplianceCategory is the ANSI Z21.47 venting classification.
type ApplianceCategory string

const (
	CategoryI               ApplianceCategory = "I"
	CategoryII              ApplianceCategory = "II"
	CategoryIII             ApplianceCategory = "III"
	CategoryIV              ApplianceCategory = "IV"
	CategoryBuildingHeating ApplianceCategory = "BUILDING_HEATING"
)

// VentStandard selects the fitting-loss coefficient table for a segment.
type VentStandard string

const (
	StandardUL441  VentStandard = "UL441"  // Type B gas vent
	StandardUL103  VentStandard = "UL103"  // pressure chimney
	StandardUL1738 VentStandard = "UL1738" // special gas vent
)

// ScenarioTag names one of the mutually exclusive operating scenarios.
type ScenarioTag string

const (
	ScenarioAll             ScenarioTag = "ALL"
	ScenarioAllMinusLargest ScenarioTag = "ALL_MINUS_LARGEST"
	ScenarioSingleLargest   ScenarioTag = "SINGLE_LARGEST"
	ScenarioSingleSmallest  ScenarioTag = "SINGLE_SMALLEST"
)

// ApplianceSpec describes one combustion appliance on the common vent.
// CO2Percent and FlueTempF may be left zero to take the category defaults.
type ApplianceSpec struct {
	InputMBH         float64           `json:"input_mbh"`          // thousand BTU/hr
	OutletDiameterIn float64           `json:"outlet_diameter_in"` // inches
	Category         ApplianceCategory `json:"category"`
	Fuel             FuelType          `json:"fuel"`
	CO2Percent       float64           `json:"co2_percent,omitempty"`
	FlueTempF        float64           `json:"flue_temp_f,omitempty"`
	TurndownRatio    float64           `json:"turndown_ratio,omitempty"` // 1 or 0 = fixed fire
}

// FittingCounts holds non-negative fitting quantities for a segment.
type FittingCounts struct {
	Elbow90 int `json:"elbow_90,omitempty"`
	Elbow45 int `json:"elbow_45,omitempty"`
	Elbow30 int `json:"elbow_30,omitempty"`
	Tee     int `json:"tee,omitempty"`
}

// VentSegment is one run of vent: the appliance connector or the common
// manifold. DiameterIn must be at least the largest connected outlet.
type VentSegment struct {
	DiameterIn     float64       `json:"diameter_in"`
	LengthFt       float64       `json:"length_ft"`
	RiseFt         float64       `json:"rise_ft"`
	Standard       VentStandard  `json:"standard"`
	Fittings       FittingCounts `json:"fittings"`
	TerminationCap bool          `json:"termination_cap,omitempty"`
}

// AmbientConditions carry the site state. BarometricInHg is pre-resolved by
// the elevation collaborator; the core never performs geographic lookups.
type AmbientConditions struct {
	OutdoorTempF   float64 `json:"outdoor_temp_f"`
	BarometricInHg float64 `json:"barometric_in_hg"`
}

// SelectionPreferences are the operator choices that steer product
// selection without overriding guard rails.
type SelectionPreferences struct {
	Touchscreen     bool   `json:"touchscreen,omitempty"`
	SupplyAir       bool   `json:"supply_air,omitempty"`
	PreferredSeries string `json:"preferred_series,omitempty"`
}

// SystemRequest is one fully-formed calculation request. Session and
// data-collection state belong to the UI collaborator, not here.
type SystemRequest struct {
	Appliances  []ApplianceSpec      `json:"appliances"`
	Connector   *VentSegment         `json:"connector,omitempty"`
	Manifold    *VentSegment         `json:"manifold,omitempty"`
	Ambient     AmbientConditions    `json:"ambient"`
	Preferences SelectionPreferences `json:"preferences"`
}

// ApplianceFlow is the combustion result for one appliance.
type ApplianceFlow struct {
	Index            int     `json:"index"` // position in the request
	CFM              float64 `json:"cfm"`
	MassFlowLbPerMin float64 `json:"mass_flow_lb_per_min"`
	FlueTempF        float64 `json:"flue_temp_f"`
	MFactor          float64 `json:"m_factor"` // lb products per 1000 BTU
}

// LossItem itemizes one contribution to a segment's pressure loss.
type LossItem struct {
	Source   string  `json:"source"` // fitting name or "length"
	Count    int     `json:"count,omitempty"`
	KEach    float64 `json:"k_each,omitempty"`
	KTotal   float64 `json:"k_total"`
	LossInWC float64 `json:"loss_in_wc"`
}

// SegmentResult is the hydraulic analysis of one vent segment.
// Draft values are negative inches w.c. (below atmospheric).
type SegmentResult struct {
	Role                 string     `json:"role"` // "connector" | "manifold"
	CFM                  float64    `json:"cfm"`
	VelocityFPS          float64    `json:"velocity_fps"`
	VelocityPressureInWC float64    `json:"velocity_pressure_in_wc"`
	TheoreticalDraftInWC float64    `json:"theoretical_draft_in_wc"`
	Losses               []LossItem `json:"losses"`
	TotalLossInWC        float64    `json:"total_loss_in_wc"`
	AvailableDraftInWC   float64    `json:"available_draft_in_wc"`
}

// ComplianceFlags are non-fatal warnings surfaced alongside results.
type ComplianceFlags struct {
	VelocityLow      bool     `json:"velocity_low,omitempty"`
	VelocityHigh     bool     `json:"velocity_high,omitempty"`
	CategoryMismatch bool     `json:"category_mismatch,omitempty"`
	Notes            []string `json:"notes,omitempty"`
}

// CalculationResult is the immutable outcome of one scenario evaluation.
type CalculationResult struct {
	Scenario           ScenarioTag     `json:"scenario"`
	ActiveAppliances   []int           `json:"active_appliances"` // request indices
	Flows              []ApplianceFlow `json:"flows"`
	TotalCFM           float64         `json:"total_cfm"`
	MixedFlueTempF     float64         `json:"mixed_flue_temp_f"`
	Connector          *SegmentResult  `json:"connector,omitempty"`
	Manifold           *SegmentResult  `json:"manifold,omitempty"`
	AvailableDraftInWC float64         `json:"available_draft_in_wc"`
	Compliance         ComplianceFlags `json:"compliance"`
}

// FanCurvePoint is one sampled operating point of a fan.
type FanCurvePoint struct {
	FlowCFM      float64 `json:"flow_cfm"`
	PressureInWC float64 `json:"pressure_in_wc"`
}

// FanCurve is the sampled performance of one catalog model, ordered by
// strictly increasing flow. The sampled flow range bounds the valid domain;
// the selector never evaluates a curve outside it.
type FanCurve struct {
	Model  string          `json:"model"`
	Series string          `json:"series"`
	Points []FanCurvePoint `json:"points"`
}

// GuardRailDecision records one matched selection rule for the rationale
// trail.
type GuardRailDecision struct {
	Rule      string `json:"rule"`
	Action    string `json:"action"`
	Rationale string `json:"rationale"`
}

// NoFitDetail reports a selection failure: no catalog model satisfied the
// sizing requirement in any series. It is an outcome, not an error.
type NoFitDetail struct {
	RequiredCFM          float64  `json:"required_cfm"`
	RequiredPressureInWC float64  `json:"required_pressure_in_wc"`
	SeriesTried          []string `json:"series_tried"`
}

// DamperSpec sizes an unpowered barometric damper to an appliance outlet.
type DamperSpec struct {
	ApplianceIndex int     `json:"appliance_index"`
	DiameterIn     float64 `json:"diameter_in"`
}

// SelectionResult is the hardware choice for a computed load.
type SelectionResult struct {
	PoweredInducer       bool                `json:"powered_inducer"`
	InducerSeries        string              `json:"inducer_series,omitempty"`
	InducerModel         string              `json:"inducer_model,omitempty"`
	InducerCurve         []FanCurvePoint     `json:"inducer_curve,omitempty"` // raw points for plotting
	NoFit                *NoFitDetail        `json:"no_fit,omitempty"`
	RequiredCFM          float64             `json:"required_cfm"`
	RequiredPressureInWC float64             `json:"required_pressure_in_wc"`
	OverdraftControl     bool                `json:"overdraft_control"`
	SupplyAir            bool                `json:"supply_air"`
	ControllerBase       string              `json:"controller_base"`
	ControllerSuffix     string              `json:"controller_suffix"`
	Controller           string              `json:"controller"` // base-suffix
	SupplyFanModel       string              `json:"supply_fan_model,omitempty"`
	BarometricDampers    []DamperSpec        `json:"barometric_dampers,omitempty"`
	GuardRails           []GuardRailDecision `json:"guard_rails,omitempty"`
}

// Evaluation is one persisted calculate-and-select run.
type Evaluation struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Request   SystemRequest       `json:"request"`
	Scenarios []CalculationResult `json:"scenarios"`
	WorstCase ScenarioTag         `json:"worst_case"`
	Selection SelectionResult     `json:"selection"`
}

// User is an API account.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
