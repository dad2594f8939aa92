package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	base := time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)
	at := func(hoursAgo int) time.Time { return base.Add(-time.Duration(hoursAgo) * time.Hour) }

	testCases := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"空", nil, 0},
		{"1件", []time.Time{at(0)}, 1},
		{"3日連続", []time.Time{at(0), at(24), at(48)}, 3},
		{"同日は数えない", []time.Time{at(0), at(2), at(26)}, 2},
		{"間が空いたら打ち切り", []time.Time{at(0), at(24), at(96), at(120)}, 2},
		{"順不同でも並べ替える", []time.Time{at(48), at(0), at(24)}, 3},
		{"23時間差は同日扱い", []time.Time{at(0), at(23)}, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Calculate(tc.dates))
		})
	}
}
