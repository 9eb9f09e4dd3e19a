package obj

// Controls is the per-frame intent the player acts on. The game fills it
// from the keyboard; tests set it directly.
type Controls struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// Jump is true while the jump key is held.
	Jump bool
}
