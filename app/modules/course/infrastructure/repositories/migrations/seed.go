package coursemigrations

// holeSpec is one seeded hole of the Champions Pointe card.
type holeSpec struct {
	Number      int
	Par         int
	StrokeIndex int
	Fuzzy       int
	White       int
	Gray        int
	Red         int
}

const seedCourseName = "Champions Pointe Golf Club"

// The card the trip plays. Pars sum to 72 and the stroke indexes are a 1-18
// permutation; migrations_test.go keeps that honest.
var championsPointeHoles = []holeSpec{
	{Number: 1, Par: 4, StrokeIndex: 5, Fuzzy: 425, White: 402, Gray: 370, Red: 331},
	{Number: 2, Par: 5, StrokeIndex: 9, Fuzzy: 551, White: 528, Gray: 497, Red: 449},
	{Number: 3, Par: 3, StrokeIndex: 17, Fuzzy: 172, White: 156, Gray: 141, Red: 118},
	{Number: 4, Par: 4, StrokeIndex: 1, Fuzzy: 466, White: 441, Gray: 409, Red: 365},
	{Number: 5, Par: 4, StrokeIndex: 11, Fuzzy: 409, White: 387, Gray: 358, Red: 322},
	{Number: 6, Par: 3, StrokeIndex: 15, Fuzzy: 196, White: 178, Gray: 160, Red: 131},
	{Number: 7, Par: 5, StrokeIndex: 7, Fuzzy: 574, White: 547, Gray: 515, Red: 468},
	{Number: 8, Par: 4, StrokeIndex: 3, Fuzzy: 452, White: 428, Gray: 396, Red: 352},
	{Number: 9, Par: 4, StrokeIndex: 13, Fuzzy: 389, White: 366, Gray: 338, Red: 301},
	{Number: 10, Par: 5, StrokeIndex: 8, Fuzzy: 562, White: 535, Gray: 505, Red: 457},
	{Number: 11, Par: 4, StrokeIndex: 2, Fuzzy: 460, White: 436, Gray: 403, Red: 360},
	{Number: 12, Par: 3, StrokeIndex: 18, Fuzzy: 163, White: 148, Gray: 133, Red: 109},
	{Number: 13, Par: 4, StrokeIndex: 12, Fuzzy: 401, White: 379, Gray: 351, Red: 315},
	{Number: 14, Par: 4, StrokeIndex: 6, Fuzzy: 437, White: 412, Gray: 382, Red: 340},
	{Number: 15, Par: 5, StrokeIndex: 4, Fuzzy: 581, White: 553, Gray: 521, Red: 472},
	{Number: 16, Par: 3, StrokeIndex: 16, Fuzzy: 184, White: 167, Gray: 150, Red: 124},
	{Number: 17, Par: 4, StrokeIndex: 10, Fuzzy: 417, White: 394, Gray: 364, Red: 327},
	{Number: 18, Par: 4, StrokeIndex: 14, Fuzzy: 393, White: 371, Gray: 343, Red: 306},
}

func seedParTotal() int {
	total := 0
	for _, h := range championsPointeHoles {
		total += h.Par
	}
	return total
}

// seedYardageTotal is the total from the white tees, which is what the card prints.
func seedYardageTotal() int {
	total := 0
	for _, h := range championsPointeHoles {
		total += h.White
	}
	return total
}
