package interview

import (
	"time"

	"github.com/avinsharma/intervu/internal/evaluate"
	"github.com/avinsharma/intervu/internal/interview"
)

// questionReadyMsg is sent when the next question is available, either
// generated, cached or the suggested one.
type questionReadyMsg struct {
	Action   interview.Action
	Question string
}

// answerScoredMsg is sent when the evaluator has scored the answer.
type answerScoredMsg struct {
	Question   string
	Answer     string
	Evaluation evaluate.Evaluation
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the candidate dismisses the feedback.
type feedbackDoneMsg struct{}

// finishMsg triggers finalization, normally or after timeout.
type finishMsg struct{}

// finalizedMsg carries the finalized result to the summary hand-off.
type finalizedMsg struct {
	Result interview.Result
}
