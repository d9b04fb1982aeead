package sharedtypes

// TeeColor is the tee box a player hits from. Scores are tee-agnostic; only yardage
// display depends on the selection.
type TeeColor string

const (
	TeeFuzzy TeeColor = "fuzzy"
	TeeWhite TeeColor = "white"
	TeeGray  TeeColor = "gray"
	TeeRed   TeeColor = "red"
)

// TeeColors lists every valid tee selection, in the order the course card prints them.
func TeeColors() []TeeColor {
	return []TeeColor{TeeFuzzy, TeeWhite, TeeGray, TeeRed}
}

// IsValid reports whether the tee color is one the course defines yardages for.
func (t TeeColor) IsValid() bool {
	switch t {
	case TeeFuzzy, TeeWhite, TeeGray, TeeRed:
		return true
	}
	return false
}
