package scores

// Scores holds the points of both players
type Scores struct {
	LeftScores  int32
	RightScores int32
}

// Side names a player by the edge of the playfield they defend
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Award adds exactly one point to the given side
func (s *Scores) Award(side Side) {
	if side == Left {
		s.LeftScores++
	} else {
		s.RightScores++
	}
}

// Of returns the points of one side
func (s Scores) Of(side Side) int32 {
	if side == Left {
		return s.LeftScores
	}
	return s.RightScores
}
