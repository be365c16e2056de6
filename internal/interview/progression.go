package interview

// Action tells the caller what happens next: either generate and ask the
// question at (Round, Slot), or the interview is complete.
type Action struct {
	Done       bool
	Round      int
	Slot       int
	Topic      Topic
	Difficulty Difficulty
}

// NextAction inspects the session and returns the next step. It does not
// mutate the session; RecordAnswer owns all state transitions.
func (s *Session) NextAction() Action {
	if s.CurrentRound >= NumRounds {
		return Action{Done: true}
	}

	r := &s.Rounds[s.CurrentRound]

	// First question of a round runs at the round's declared difficulty.
	difficulty := r.Difficulty
	if r.QuestionIndex > 0 {
		last := 5
		if len(r.Scores) > 0 {
			last = r.Scores[len(r.Scores)-1]
		}
		difficulty = NextDifficulty(last, r.Difficulty)
	}

	return Action{
		Round:      s.CurrentRound,
		Slot:       r.QuestionIndex,
		Topic:      TopicCycle[r.QuestionIndex],
		Difficulty: difficulty,
	}
}

// NextDifficulty picks the difficulty for the next question within a
// round. A weak answer drops to Easy, a strong one jumps to Hard,
// anything in between stays at the round's declared difficulty. The pick
// is per-question; the round's declared difficulty never changes.
func NextDifficulty(lastScore int, declared Difficulty) Difficulty {
	switch {
	case lastScore < 5 && declared != Easy:
		return Easy
	case lastScore >= 8 && declared != Hard:
		return Hard
	default:
		return declared
	}
}

// Completed reports whether all rounds have been fully answered.
func (s *Session) Completed() bool {
	return s.CurrentRound >= NumRounds
}
