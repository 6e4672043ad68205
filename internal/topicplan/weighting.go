package topicplan

import "math"

// MinStepHours is the shortest duration any step receives.
const MinStepHours = 0.5

// TotalHours rounds an effort estimate to whole hours, never below one.
func TotalHours(effortHours float64) int {
	h := int(math.Round(effortHours))
	if h < 1 {
		return 1
	}
	return h
}

// WeightDurations splits totalHours across weights proportionally. Each
// duration is rounded to one decimal place and floored at MinStepHours.
func WeightDurations(weights []int, totalHours int) []float64 {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	out := make([]float64, len(weights))
	if sum <= 0 {
		for i := range out {
			out[i] = MinStepHours
		}
		return out
	}
	for i, w := range weights {
		d := float64(w) * float64(totalHours) / float64(sum)
		out[i] = math.Max(MinStepHours, math.Round(d*10)/10)
	}
	return out
}
