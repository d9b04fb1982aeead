// Package scorecarddomain holds the pure scoring rules shared by the entry UI and the
// leaderboard: hole-result classification and score formatting. Nothing here touches
// the database.
package scorecarddomain

// Category names the result of a single hole relative to par.
type Category string

const (
	Albatross     Category = "albatross"
	Eagle         Category = "eagle"
	Birdie        Category = "birdie"
	Par           Category = "par"
	Bogey         Category = "bogey"
	DoubleBogey   Category = "double_bogey"
	TripleOrWorse Category = "triple_or_worse"
)

// Classify maps a hole result to its category by strokes relative to par. The caller
// guarantees par is a valid 3-5 value and strokes is a positive integer; there are no
// error cases.
func Classify(strokes, par int) Category {
	switch diff := strokes - par; {
	case diff <= -3:
		return Albatross
	case diff == -2:
		return Eagle
	case diff == -1:
		return Birdie
	case diff == 0:
		return Par
	case diff == 1:
		return Bogey
	case diff == 2:
		return DoubleBogey
	default:
		return TripleOrWorse
	}
}

// Label returns the display name used on the scorecard cells.
func (c Category) Label() string {
	switch c {
	case DoubleBogey:
		return "double bogey"
	case TripleOrWorse:
		return "triple+"
	default:
		return string(c)
	}
}

// Symbol returns the traditional scorecard marking for the category: circles under
// par, squares over par.
func (c Category) Symbol() string {
	switch c {
	case Albatross:
		return "⚪"
	case Eagle:
		return "⚫"
	case Birdie:
		return "○"
	case Par:
		return "■"
	case Bogey:
		return "□"
	case DoubleBogey:
		return "□□"
	case TripleOrWorse:
		return "□□□"
	default:
		return ""
	}
}
