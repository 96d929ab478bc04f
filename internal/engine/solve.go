package engine

import "github.com/tatianab/number-game/internal/models"

// Solve returns the smallest n in [lo, hi] for which every condition holds.
func Solve(lo, hi int, conds []models.Condition) (int, bool) {
	for n := lo; n <= hi; n++ {
		if allHold(conds, n) {
			return n, true
		}
	}
	return 0, false
}

// Revealed returns the conditions shown in snap.
func Revealed(snap models.Snapshot) []models.Condition {
	out := make([]models.Condition, len(snap.Conditions))
	for i, sc := range snap.Conditions {
		out[i] = sc.Condition
	}
	return out
}
