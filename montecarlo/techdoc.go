package montecarlo

// Doc is the static technical description of the simulator, surfaced
// through the analytics facade.
type Doc struct {
	Method      string
	Purpose     string
	Sampling    string
	Parameters  []Param
	Outputs     []string
	Limitations []string
}

// TechnicalDoc returns the static documentation record for this
// simulator's configuration.
func (s *Simulator) TechnicalDoc() Doc {
	return Doc{
		Method:   "Monte Carlo simulation",
		Purpose:  "Uncertainty quantification of freight-toll health outcomes",
		Sampling: "Independent draws from Gaussian parameter distributions, floors applied",
		Parameters: []Param{
			s.cfg.Elasticity,
			s.cfg.ReductionRate,
			s.cfg.ResponseCoeff,
		},
		Outputs: []string{
			"Per-metric summary statistics (mean, population std, min/max, p5/p25/p50/p75/p95)",
			"50-bin density histograms",
			"95% and 50% confidence intervals",
		},
		Limitations: []string{
			"Parameters are assumed independent",
			"Gaussian tails may understate extreme outcomes",
			"No temporal correlation between days",
		},
	}
}
