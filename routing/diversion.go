package routing

import "sort"

// defaultBatchLevels is the tax sweep used when BatchAnalyze receives no
// levels.
var defaultBatchLevels = []float64{0, 25, 50, 75, 100}

// AnalyzeDiversion compares the optimal route with and without the toll
// between the given endpoints.
//
// WillDivert is true iff the tolled optimum touches residential streets
// while the toll-free optimum does not: the toll, not the geometry, is
// what pushed freight into the neighborhood.
func (e *Engine) AnalyzeDiversion(taxAmount float64, start, goal string) (Diversion, error) {
	withTax, err := e.FindPath(start, goal, taxAmount)
	if err != nil {
		return Diversion{}, err
	}
	withoutTax, err := e.FindPath(start, goal, 0)
	if err != nil {
		return Diversion{}, err
	}

	d := Diversion{
		TaxAmount:     taxAmount,
		WithTax:       withTax,
		WithoutTax:    withoutTax,
		WillDivert:    withTax.UsesResidential && !withoutTax.UsesResidential,
		PenaltyWeight: e.penalty,
	}

	if withoutTax.CostMinutes > 0 {
		d.CostIncreasePct = (withTax.CostMinutes - withoutTax.CostMinutes) / withoutTax.CostMinutes * 100
	}

	if withTax.UsesResidential {
		var id string
		for _, id = range withTax.Path {
			if e.nodes[id].Residential {
				d.ResidentialSegments = append(d.ResidentialSegments, id)
			}
		}
	}

	return d, nil
}

// BatchAnalyze runs AnalyzeDiversion between the corridor entries for
// every tax level and reports the lowest level (ascending scan) at which
// diversion first occurs.
//
// levels nil or empty selects the default sweep {0, 25, 50, 75, 100}.
func (e *Engine) BatchAnalyze(levels []float64) (*BatchResult, error) {
	if len(levels) == 0 {
		levels = defaultBatchLevels
	}

	res := &BatchResult{
		Levels:   append([]float64(nil), levels...),
		Analyses: make(map[float64]Diversion, len(levels)),
	}

	var tax float64
	for _, tax = range levels {
		d, err := e.AnalyzeDiversion(tax, "start_west", "start_east")
		if err != nil {
			return nil, err
		}
		res.Analyses[tax] = d
	}

	ascending := append([]float64(nil), levels...)
	sort.Float64s(ascending)
	for _, tax = range ascending {
		if res.Analyses[tax].WillDivert {
			res.Threshold = tax
			res.ThresholdFound = true
			break
		}
	}

	return res, nil
}
