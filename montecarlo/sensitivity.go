package montecarlo

// defaultTaxLevels is the sweep used when the caller passes no levels.
var defaultTaxLevels = []float64{10, 25, 50, 75, 100}

// SensitivityAnalysis runs one independent simulation per tax level and
// condenses the avoided-health-events metric into per-level summaries.
//
// taxLevels nil or empty selects the default sweep {10, 25, 50, 75, 100}.
// iterations applies to every level; iterations < 1 returns
// ErrBadIterations.
func (s *Simulator) SensitivityAnalysis(taxLevels []float64, iterations int) (*Comparison, error) {
	if len(taxLevels) == 0 {
		taxLevels = defaultTaxLevels
	}

	cmp := &Comparison{
		TaxLevels: append([]float64(nil), taxLevels...),
		Results:   make(map[float64]*Result, len(taxLevels)),
		Summary:   make(map[float64]LevelSummary, len(taxLevels)),
	}

	var tax float64
	for _, tax = range taxLevels {
		res, err := s.Run(tax, iterations)
		if err != nil {
			return nil, err
		}
		cmp.Results[tax] = res
		cmp.Summary[tax] = LevelSummary{
			MeanAvoidedEvents: res.Stats[MetricAvoidedHealthEvents].Mean,
			CI:                res.Intervals[MetricAvoidedHealthEvents],
		}
	}

	return cmp, nil
}
