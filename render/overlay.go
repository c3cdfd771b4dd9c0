package render

import (
	"fmt"

	"github.com/mo-shahab/go-pong/game"
)

// Presentation is everything shown around the playfield
type Presentation struct {
	Left   int32
	Right  int32
	Paused bool
	Ended  bool
}

// Present derives the score and pause display from a snapshot
func Present(snapshot game.Snapshot) Presentation {
	return Presentation{
		Left:   snapshot.Scores.LeftScores,
		Right:  snapshot.Scores.RightScores,
		Paused: snapshot.Round == game.Paused,
		Ended:  snapshot.Round == game.Ended,
	}
}

// ScoreLine formats the score as "left | right"
func (p Presentation) ScoreLine() string {
	return fmt.Sprintf("%d | %d", p.Left, p.Right)
}

// Banner is the overlay text, empty when nothing should be shown
func (p Presentation) Banner() string {
	if p.Paused {
		return "PAUSE"
	}
	return ""
}
