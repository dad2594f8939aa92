// Package session は回答履歴から練習セッションを再構成します。
package session

import (
	"math"
	"sort"
	"time"

	"langy/internal/model"
)

// Window はセッションの代表時刻からの許容幅 (両端含む)
const Window = 30 * time.Minute

// Reconstruct は records を与えられた順に処理し、セッションへ振り分けます。
// 代表時刻は最初のレコードの時刻で固定し、更新しない。
// 複数のセッションに該当する場合は先に作られた方へ入れる。
func Reconstruct(records []*model.QuizAnswerRecord) []*model.PracticeSession {
	sessions := make([]*model.PracticeSession, 0)

	for _, r := range records {
		var target *model.PracticeSession
		for _, s := range sessions {
			if absDuration(r.CreatedAt.Sub(s.Date)) <= Window {
				target = s
				break
			}
		}
		if target == nil {
			target = &model.PracticeSession{
				SessionID: r.ResultID,
				Date:      r.CreatedAt,
			}
			sessions = append(sessions, target)
		}

		target.TotalQuestions++
		if r.IsCorrect {
			target.CorrectAnswers++
		}
		if r.TimeTaken != nil {
			target.TimeTaken += *r.TimeTaken
		}
		target.Results = append(target.Results, r)
	}

	for _, s := range sessions {
		s.Accuracy = Accuracy(s.CorrectAnswers, s.TotalQuestions)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date)
	})
	return sessions
}

// Accuracy は正答率 (%) を四捨五入で返します
func Accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
