package service

import "math"

// EstimateReward converts a yearly impact in tons of CO2 into a token
// reward: floor(impact * 10), never negative and capped at MaxInt32.
//
// impact*10 is floored with a 1e-9 tolerance so decimal inputs such as 2.3,
// whose product is 22.999999999999996 in float64, yield 23. Inputs within
// 1e-10 below a tenth therefore round up to it: 0.29999999995 yields 3.
func EstimateReward(impact float64) int {
	if impact <= 0 || math.IsNaN(impact) {
		return 0
	}
	return int(math.Min(math.Floor(impact*10+1e-9), math.MaxInt32))
}
