package analytics

import (
	"github.com/corridorlabs/freightsim/hmm"
	"github.com/corridorlabs/freightsim/montecarlo"
	"github.com/corridorlabs/freightsim/routing"
)

// Analytics bundles the three corridor engines. Fields are exported so
// callers reach each engine's full API directly.
type Analytics struct {
	HMM        *hmm.Engine
	MonteCarlo *montecarlo.Simulator
	Routing    *routing.Engine
}

// Docs aggregates the static technical documentation of all engines.
type Docs struct {
	HMM        hmm.Doc
	MonteCarlo montecarlo.Doc
	Routing    routing.Doc
}

// config collects the construction knobs before the engines are built.
type config struct {
	hmmCfg  hmm.Config
	mcOpts  []montecarlo.Option
	penalty float64
}

// Option configures New.
type Option func(*config)

// WithHMMConfig replaces the default state-inference model.
func WithHMMConfig(cfg hmm.Config) Option {
	return func(c *config) { c.hmmCfg = cfg }
}

// WithMonteCarloOptions forwards options to the uncertainty simulator
// (seed, custom parameter distributions).
func WithMonteCarloOptions(opts ...montecarlo.Option) Option {
	return func(c *config) { c.mcOpts = append(c.mcOpts, opts...) }
}

// WithResidentialPenalty sets the route-choice residential penalty
// weight (default routing.DefaultPenaltyWeight).
func WithResidentialPenalty(weight float64) Option {
	return func(c *config) { c.penalty = weight }
}

// New builds the three engines with production defaults, customized by
// the given options. Construction fails if any engine rejects its
// configuration.
func New(opts ...Option) (*Analytics, error) {
	c := config{
		hmmCfg:  hmm.DefaultConfig(),
		penalty: routing.DefaultPenaltyWeight,
	}
	var opt Option
	for _, opt = range opts {
		opt(&c)
	}

	stateEngine, err := hmm.New(c.hmmCfg)
	if err != nil {
		return nil, err
	}

	routeEngine, err := routing.New(c.penalty)
	if err != nil {
		return nil, err
	}

	return &Analytics{
		HMM:        stateEngine,
		MonteCarlo: montecarlo.New(c.mcOpts...),
		Routing:    routeEngine,
	}, nil
}

// TechnicalDocs returns the combined static documentation records of
// the three engines.
func (a *Analytics) TechnicalDocs() Docs {
	return Docs{
		HMM:        a.HMM.TechnicalDoc(),
		MonteCarlo: a.MonteCarlo.TechnicalDoc(),
		Routing:    a.Routing.TechnicalDoc(),
	}
}
