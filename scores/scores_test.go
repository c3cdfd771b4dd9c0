package scores

import "testing"

func TestAward(t *testing.T) {
	var s Scores

	s.Award(Right)
	s.Award(Right)
	s.Award(Left)

	if s.LeftScores != 1 || s.RightScores != 2 {
		t.Errorf("expected 1-2, got %d-%d", s.LeftScores, s.RightScores)
	}
	if s.Of(Right) != 2 {
		t.Errorf("expected Of(Right) = 2, got %d", s.Of(Right))
	}
}

func TestOpponent(t *testing.T) {
	if Left.Opponent() != Right || Right.Opponent() != Left {
		t.Error("opponent of a side must be the other side")
	}
	if Left.String() != "Left" || Right.String() != "Right" {
		t.Errorf("unexpected names %q %q", Left, Right)
	}
}
