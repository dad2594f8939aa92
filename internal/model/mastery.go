// internal/model/mastery.go
package model

// MasteryLevel は単語の習熟度 (0〜5) です
type MasteryLevel int

const (
	MasteryNew        MasteryLevel = iota // 0
	MasteryBeginner                       // 1
	MasteryFamiliar                       // 2
	MasteryConfident                      // 3
	MasteryProficient                     // 4
	MasteryMastered                       // 5
)

var masteryLabels = map[MasteryLevel]string{
	MasteryNew:        "new",
	MasteryBeginner:   "beginner",
	MasteryFamiliar:   "familiar",
	MasteryConfident:  "confident",
	MasteryProficient: "proficient",
	MasteryMastered:   "mastered",
}

func (l MasteryLevel) String() string {
	if s, ok := masteryLabels[l]; ok {
		return s
	}
	return "unknown"
}
