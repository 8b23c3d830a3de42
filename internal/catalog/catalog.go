// Package catalog is the read-only hardware repository: draft-inducer fan
// curves keyed by model, series metadata in selection priority order, and
// supply-air fan capacities. It is loaded once at process start and never
// mutated, so it may be shared across requests without synchronization.
package catalog

import (
	"fmt"
	"sort"

	vs "vent_sizing"
)

// Series describes one inducer product family.
type Series struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	CondensingRated bool   `json:"condensing_rated"`
	VariableSpeed   bool   `json:"variable_speed"`
}

// inducerSeries is the fixed selection priority order, most compact first.
var inducerSeries = []Series{
	{Name: "TRV", Description: "true inline, compact", CondensingRated: true, VariableSpeed: true},
	{Name: "T9F", Description: "90-degree inline", CondensingRated: false, VariableSpeed: true},
	{Name: "CBX", Description: "termination mount", CondensingRated: false, VariableSpeed: false},
}

// SupplyFan is a combustion-air fan with a flow-only rating.
type SupplyFan struct {
	Model  string  `json:"model"`
	Series string  `json:"series"`
	MaxCFM float64 `json:"max_cfm"`
}

// Catalog is the immutable model → curve repository.
type Catalog struct {
	curves       map[string]vs.FanCurve
	seriesModels map[string][]string // models ascending by top sampled flow
	supplyFans   []SupplyFan         // ascending by MaxCFM
}

// New builds a catalog from curves and supply fans, validating every curve
// and ordering models within each series by ascending capacity.
func New(curves []vs.FanCurve, supply []SupplyFan) (*Catalog, error) {
	c := &Catalog{
		curves:       make(map[string]vs.FanCurve, len(curves)),
		seriesModels: make(map[string][]string),
	}
	for _, fc := range curves {
		if err := validatePoints(fc.Model, fc.Points); err != nil {
			return nil, err
		}
		if _, dup := c.curves[fc.Model]; dup {
			return nil, fmt.Errorf("duplicate curve for model %s", fc.Model)
		}
		c.curves[fc.Model] = fc
		c.seriesModels[fc.Series] = append(c.seriesModels[fc.Series], fc.Model)
	}
	for series, models := range c.seriesModels {
		sort.SliceStable(models, func(a, b int) bool {
			_, maxA := Domain(c.curves[models[a]].Points)
			_, maxB := Domain(c.curves[models[b]].Points)
			return maxA < maxB
		})
		c.seriesModels[series] = models
	}
	c.supplyFans = append(c.supplyFans, supply...)
	sort.SliceStable(c.supplyFans, func(a, b int) bool {
		return c.supplyFans[a].MaxCFM < c.supplyFans[b].MaxCFM
	})
	return c, nil
}

// Curve returns the sampled curve for a model.
func (c *Catalog) Curve(model string) (vs.FanCurve, bool) {
	fc, ok := c.curves[model]
	return fc, ok
}

// InducerSeries returns the product families in selection priority order.
func (c *Catalog) InducerSeries() []Series {
	out := make([]Series, len(inducerSeries))
	copy(out, inducerSeries)
	return out
}

// SeriesModels returns a series' models ascending by nominal capacity.
func (c *Catalog) SeriesModels(series string) []string {
	models := c.seriesModels[series]
	out := make([]string, len(models))
	copy(out, models)
	return out
}

// Models lists every inducer curve in priority-then-capacity order.
func (c *Catalog) Models() []vs.FanCurve {
	var out []vs.FanCurve
	for _, s := range inducerSeries {
		for _, m := range c.seriesModels[s.Name] {
			out = append(out, c.curves[m])
		}
	}
	return out
}

// SupplyFans returns combustion-air fans ascending by rated flow.
func (c *Catalog) SupplyFans() []SupplyFan {
	out := make([]SupplyFan, len(c.supplyFans))
	copy(out, c.supplyFans)
	return out
}
