package engine

// Evaluate scores the position of owner between -1 and 1 from the strength
// its live units keep against everyone else's.
func (e *Engine) Evaluate(owner int) float64 {
	var own, others float64
	for _, u := range e.Units {
		if u.Destroyed || u.Strength <= 0 {
			continue
		}
		if u.Owner == owner {
			own += float64(u.Strength)
		} else {
			others += float64(u.Strength)
		}
	}
	return normalize(own, others)
}

func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
