package attendance

import "math"

// Standing is a subject's attendance percentage and how many consecutive
// classes must still be attended to reach the required percentage.
// ClassesToAttend is -1 when the requirement can no longer be met.
type Standing struct {
	Percentage      float64 `json:"percentage"`
	ClassesToAttend int     `json:"classesToAttend"`
	Attainable      bool    `json:"attainable"`
}

// ComputeStanding derives the standing from the counters. The classes needed
// is the smallest x with (attended+x)/(total+x) >= required/100, i.e.
// ceil((required*total - 100*attended) / (100 - required)).
func ComputeStanding(total, attended int, required float64) Standing {
	st := Standing{Attainable: true}
	if total > 0 {
		st.Percentage = math.Round(float64(attended)/float64(total)*100*100) / 100
	}
	if required <= 0 {
		return st
	}
	if required >= 100 {
		if attended < total {
			st.ClassesToAttend = -1
			st.Attainable = false
		}
		return st
	}
	need := (required*float64(total) - 100*float64(attended)) / (100 - required)
	// guard against float noise such as 3.0000000000004
	need = math.Round(need*1e9) / 1e9
	st.ClassesToAttend = int(math.Max(0, math.Ceil(need)))
	return st
}
