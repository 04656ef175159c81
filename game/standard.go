package game

const DefaultBarrierTurns = 2

type StandardRules struct {
	BarrierLifetime int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		BarrierLifetime: DefaultBarrierTurns,
	}
}

// NewRulesWithBarrierLifetime returns standard rules whose barriers last the given
// number of ticks. Non-positive values keep the default.
func NewRulesWithBarrierLifetime(turns int) *StandardRules {
	sr := NewStandardRules()
	if turns > 0 {
		sr.BarrierLifetime = turns
	}
	return sr
}

func (sr *StandardRules) BarrierTurns() int {
	return sr.BarrierLifetime
}
