package services

// CompletionPoints is awarded for any entry that meets its daily target.
const CompletionPoints = 10

// EvaluateEntry derives the completion flag and earned points for one recorded
// value against a habit's daily target. Partial credit truncates toward zero,
// so an incomplete entry never reaches the full ten points. The caller
// guarantees target > 0; habit validation rejects anything else.
func EvaluateEntry(value float64, target float64) (completed bool, points int) {
	if value >= target {
		return true, CompletionPoints
	}
	return false, int(value / target * CompletionPoints)
}
