package match3

// Fusion thresholds.
const (
	superCandyRun     = 2 // opposite-pair sum must exceed this
	chocolateRunTotal = 3 // sum of single-direction runs longer than 1 must exceed this
)

// FusionKind reports which special item a matched candy turns into: KindSuperCandy,
// KindChocolate, or KindEmpty when the cell is simply cleared.
//
// Only a previous Candy or SuperCandy can fuse. A straight run longer than three through
// the cell yields a SuperCandy; a large enough overlap of long runs yields a Chocolate,
// which wins when both apply.
func FusionKind(d MatchDetail, previous Item) Kind {
	if !previous.Matchable() {
		return KindEmpty
	}

	kind := KindEmpty
	if d.Left+d.Right > superCandyRun || d.Up+d.Down > superCandyRun {
		kind = KindSuperCandy
	}

	long := 0
	for _, n := range [4]int{d.Up, d.Right, d.Down, d.Left} {
		if n > 1 {
			long += n
		}
	}
	if long > chocolateRunTotal {
		kind = KindChocolate
	}

	return kind
}

// ResolveFusion returns the item that survives a matched candy, or false when the cell
// is cleared. A SuperCandy inherits the previous colour; survivors always get a new key.
func ResolveFusion(d MatchDetail, previous Item, sp *Spawner) (Item, bool) {
	switch FusionKind(d, previous) {
	case KindChocolate:
		return sp.Chocolate(), true
	case KindSuperCandy:
		return sp.SuperCandy(previous.Color), true
	default:
		return Item{}, false
	}
}

// fusionRank orders fusion outcomes by strength.
func fusionRank(k Kind) int {
	switch k {
	case KindChocolate:
		return 2
	case KindSuperCandy:
		return 1
	default:
		return 0
	}
}
