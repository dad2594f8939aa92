// Package mastery は単語のXPと習熟度レベルの計算を行います。
package mastery

import (
	"time"

	"langy/internal/model"
)

const (
	CorrectXP   = 15
	IncorrectXP = -5
	MaxLevel    = int(model.MasteryMastered)
)

// levelThresholds[i] はレベル i+1 に必要な最小XP
var levelThresholds = [...]int{20, 50, 100, 160, 250}

// Outcome は1回答を反映した結果です
type Outcome struct {
	PreviousLevel  int
	Level          int
	XPDelta        int
	ReachedMastery bool
}

// LevelForXP はXPから習熟度レベル (0〜5) を求めます
func LevelForXP(xp int) int {
	level := 0
	for _, threshold := range levelThresholds {
		if xp < threshold {
			break
		}
		level++
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// RecordAnswer は回答結果を entry に反映します。I/O は行わない。
// ReachedMastery は反映前のレベルが5未満で、反映後に5になった場合のみ true。
func RecordAnswer(entry *model.VocabularyEntry, wasCorrect bool, now time.Time) Outcome {
	prev := entry.MasteryLevel

	delta := IncorrectXP
	if wasCorrect {
		delta = CorrectXP
		entry.CorrectCount++
	} else {
		entry.IncorrectCount++
	}

	xp := entry.XPPoints + delta
	if xp < 0 {
		xp = 0
	}
	// 実際に加算された量 (0で止まった場合は小さくなる)
	applied := xp - entry.XPPoints

	entry.XPPoints = xp
	entry.MasteryLevel = LevelForXP(xp)
	entry.LastPracticed = &now

	return Outcome{
		PreviousLevel:  prev,
		Level:          entry.MasteryLevel,
		XPDelta:        applied,
		ReachedMastery: prev < MaxLevel && entry.MasteryLevel == MaxLevel,
	}
}
