package hmm

// StateDoc describes one hidden state for introspection endpoints.
type StateDoc struct {
	ID             int
	Name           string
	SpeedRange     string
	PollutantRange string
	HealthRisk     string
}

// Doc is the static technical description of the model, surfaced through
// the analytics facade. It carries no computed results.
type Doc struct {
	ModelType  string
	Algorithm  string
	Complexity string
	States     []StateDoc
	Transition [NumStates][NumStates]float64
	Initial    [NumStates]float64
	Emissions  [NumStates]Emission
}

// TechnicalDoc returns the static documentation record for this engine's
// configuration.
func (e *Engine) TechnicalDoc() Doc {
	return Doc{
		ModelType:  "Hidden Markov Model (HMM)",
		Algorithm:  "Viterbi (dynamic programming)",
		Complexity: "O(T·N²), T = time steps, N = 3 states",
		States: []StateDoc{
			{ID: 0, Name: FreeFlow.Label("en"), SpeedRange: "> 50 mph", PollutantRange: "< 10 µg/m³", HealthRisk: "Low"},
			{ID: 1, Name: Congested.Label("en"), SpeedRange: "25-50 mph", PollutantRange: "10-15 µg/m³", HealthRisk: "Moderate"},
			{ID: 2, Name: Gridlock.Label("en"), SpeedRange: "< 25 mph", PollutantRange: "> 15 µg/m³", HealthRisk: "High"},
		},
		Transition: e.cfg.Transition,
		Initial:    e.cfg.Initial,
		Emissions:  e.cfg.Emissions,
	}
}
