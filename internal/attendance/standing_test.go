package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStanding(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		attended int
		required float64
		want     Standing
	}{
		{name: "on the line", total: 40, attended: 30, required: 75, want: Standing{Percentage: 75, ClassesToAttend: 0, Attainable: true}},
		{name: "short by four", total: 12, attended: 8, required: 75, want: Standing{Percentage: 66.67, ClassesToAttend: 4, Attainable: true}},
		{name: "no classes yet", total: 0, attended: 0, required: 75, want: Standing{Percentage: 0, ClassesToAttend: 0, Attainable: true}},
		{name: "above requirement", total: 10, attended: 10, required: 75, want: Standing{Percentage: 100, ClassesToAttend: 0, Attainable: true}},
		{name: "all absent", total: 4, attended: 0, required: 75, want: Standing{Percentage: 0, ClassesToAttend: 12, Attainable: true}},
		{name: "fractional need rounds up", total: 10, attended: 6, required: 65, want: Standing{Percentage: 60, ClassesToAttend: 2, Attainable: true}},
		{name: "hundred percent met", total: 5, attended: 5, required: 100, want: Standing{Percentage: 100, ClassesToAttend: 0, Attainable: true}},
		{name: "hundred percent missed", total: 5, attended: 4, required: 100, want: Standing{Percentage: 80, ClassesToAttend: -1, Attainable: false}},
		{name: "no requirement", total: 5, attended: 1, required: 0, want: Standing{Percentage: 20, ClassesToAttend: 0, Attainable: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStanding(tt.total, tt.attended, tt.required))
		})
	}
}

func TestComputeStanding_Bounds(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for attended := 0; attended <= total; attended++ {
			for _, req := range []float64{50, 75, 85, 99.5} {
				st := ComputeStanding(total, attended, req)
				assert.GreaterOrEqual(t, st.Percentage, 0.0)
				assert.LessOrEqual(t, st.Percentage, 100.0)
				assert.GreaterOrEqual(t, st.ClassesToAttend, 0)

				// attending the computed number of classes is enough, one fewer is not
				x := st.ClassesToAttend
				if total+x > 0 {
					assert.GreaterOrEqual(t, float64(attended+x)*100, req*float64(total+x)-1e-6)
				}
				if x > 0 {
					assert.Less(t, float64(attended+x-1)*100, req*float64(total+x-1))
				}
			}
		}
	}
}
