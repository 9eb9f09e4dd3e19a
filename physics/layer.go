package physics

import "strconv"

// Layer is a collision channel bitmask.
type Layer uint32

const (
	LayerNone Layer = 0
	LayerAll  Layer = ^Layer(0)
)

// Result classifies a pair of boxes.
type Result uint8

const (
	// No means the boxes do not overlap.
	No Result = iota
	// Yes means the boxes overlap and each one includes a layer the other exposes.
	Yes
	// LayerMismatch means the boxes overlap but their layer masks do not match.
	// Such pairs are reported but never pushed apart.
	LayerMismatch
)

func (r Result) String() string {
	switch r {
	case No:
		return "no"
	case Yes:
		return "yes"
	case LayerMismatch:
		return "layer-mismatch"
	default:
		return "result(" + strconv.Itoa(int(r)) + ")"
	}
}

// Touching reports whether the boxes overlap geometrically.
func (r Result) Touching() bool {
	return r == Yes || r == LayerMismatch
}
