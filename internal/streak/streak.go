// Package streak は練習日時から連続学習日数を計算します。
package streak

import (
	"sort"
	"time"
)

const day = 24 * time.Hour

// Calculate は新しい順に並べた日時の間隔から連続日数を返します。
// 間隔は24時間単位の切り捨てで数え、1日ならカウント、2日以上空いたら打ち切り、同日は無視する。
func Calculate(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	streak := 1
	for i := 1; i < len(sorted); i++ {
		diff := int(sorted[i-1].Sub(sorted[i]) / day)
		if diff == 1 {
			streak++
		} else if diff > 1 {
			break
		}
	}
	return streak
}
