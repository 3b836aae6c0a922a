package schedule

import "math"

func roundToInt(v float64) int {
	return int(math.Round(v))
}

func roundToInt64(v float64) int64 {
	return int64(math.Round(v))
}
