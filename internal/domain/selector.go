package domain

import (
	"cmp"
	"math"
	"slices"
)

// Rule is anything the selector can choose: naming rules, description rules
// and lore entries all expose an id and a weighting.
type Rule interface {
	RuleID() string
	RuleWeighting() Weighting
}

// Penalty controls how history suppresses repetition.
type Penalty struct {
	// Factor multiplies the score of any rule found in history; 0 disables
	// the multiplicative pass.
	Factor float64
	// Decay is applied once more for every extra slot the id occupies.
	Decay float64
	// ExcludeRecent drops the last N picked ids outright, shrinking the
	// window until at least MinRemaining candidates survive.
	ExcludeRecent int
	MinRemaining  int
}

// DefaultPenalty near-excludes recent rules and skips the last two picks
// while three alternatives survive; with four candidates only the last pick
// is skipped.
func DefaultPenalty() Penalty {
	return Penalty{Factor: 0.1, Decay: 0.5, ExcludeRecent: 2, MinRemaining: 3}
}

// Penalize applies the multiplicative history penalty to one score.
func Penalize(score float64, id string, h History, p Penalty) float64 {
	if p.Factor <= 0 {
		return score
	}
	n := h.Count(id)
	if n == 0 {
		return score
	}
	score *= p.Factor
	if n > 1 && p.Decay > 0 {
		score *= math.Pow(p.Decay, float64(n-1))
	}
	return score
}

// Tier is the rank range [From, To) of the sorted candidates, drawn with
// relative probability Weight. Tiers may overlap.
type Tier struct {
	From   int
	To     int
	Weight float64
}

// TierPlan is an ordered list of tiers; an empty tier falls through to the
// next one.
type TierPlan []Tier

// DefaultTiers: top 3 most of the time, the next 4 sometimes, the top 10 as
// a long-tail pool.
func DefaultTiers() TierPlan {
	return TierPlan{
		{From: 0, To: 3, Weight: 0.55},
		{From: 3, To: 7, Weight: 0.30},
		{From: 0, To: 10, Weight: 0.15},
	}
}

// TopTier picks uniformly among the best n.
func TopTier(n int) TierPlan {
	return TierPlan{{From: 0, To: n, Weight: 1}}
}

// Pick returns an index into a ranking of n candidates.
func (p TierPlan) Pick(n int, rng RNG) int {
	if n <= 0 {
		return -1
	}
	var total float64
	for _, t := range p {
		total += t.Weight
	}
	if total <= 0 {
		return 0
	}

	roll := rng.Float64() * total
	start := len(p) - 1
	var acc float64
	for i, t := range p {
		acc += t.Weight
		if roll < acc {
			start = i
			break
		}
	}

	for _, t := range p[start:] {
		lo, hi := t.From, min(t.To, n)
		if hi > lo {
			return lo + rng.Intn(hi-lo)
		}
	}
	return 0
}

// SelectorConfig tunes one selector instance.
type SelectorConfig struct {
	Bonuses Bonuses
	Penalty Penalty
	Tiers   TierPlan
}

// Scored pairs a rule with its final score.
type Scored[R Rule] struct {
	Rule  R
	Score float64
}

// Selector runs Filter → Score → Penalize → Tiered pick over a rule pool.
type Selector[R Rule] struct {
	cfg SelectorConfig
}

func NewSelector[R Rule](cfg SelectorConfig) Selector[R] {
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = DefaultTiers()
	}
	return Selector[R]{cfg: cfg}
}

func (s Selector[R]) Config() SelectorConfig { return s.cfg }

// Rank filters, scores and penalizes rules, best first. Ties keep pool order.
func (s Selector[R]) Rank(rules []R, dc DishContext, h History) []Scored[R] {
	candidates := make([]R, 0, len(rules))
	for _, r := range rules {
		if IsCompatible(r.RuleWeighting(), dc) {
			candidates = append(candidates, r)
		}
	}
	candidates = s.excludeRecent(candidates, h)

	ranked := make([]Scored[R], len(candidates))
	for i, r := range candidates {
		score := Score(r.RuleWeighting(), dc, s.cfg.Bonuses)
		if !h.Contains(r.RuleID()) {
			score += s.cfg.Bonuses.Fresh
		}
		ranked[i] = Scored[R]{Rule: r, Score: Penalize(score, r.RuleID(), h, s.cfg.Penalty)}
	}
	slices.SortStableFunc(ranked, func(a, b Scored[R]) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return ranked
}

// excludeRecent drops the most recent picks. When too few candidates
// would remain, the window shrinks one id at a time, so the oldest picks
// become eligible again first and the last pick goes last.
func (s Selector[R]) excludeRecent(candidates []R, h History) []R {
	floor := max(s.cfg.Penalty.MinRemaining, 1)
	for n := min(s.cfg.Penalty.ExcludeRecent, h.Len()); n > 0; n-- {
		recent := h.Recent(n)
		kept := make([]R, 0, len(candidates))
		for _, r := range candidates {
			if !slices.Contains(recent, r.RuleID()) {
				kept = append(kept, r)
			}
		}
		if len(kept) >= floor {
			return kept
		}
	}
	return candidates
}

// Select picks one rule and returns the history with its id recorded. ok is
// false when no rule is compatible; history is then returned unchanged.
func (s Selector[R]) Select(rules []R, dc DishContext, h History, rng RNG) (Scored[R], History, bool) {
	ranked := s.Rank(rules, dc, h)
	idx := s.cfg.Tiers.Pick(len(ranked), rng)
	if idx < 0 {
		return Scored[R]{}, h, false
	}
	picked := ranked[idx]
	return picked, h.Record(picked.Rule.RuleID()), true
}
