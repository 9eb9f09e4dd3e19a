package obj

// Health tracks hit points and the invincibility window that follows a hit.
type Health struct {
	Max        int
	Current    int
	Invincible float64 // seconds left
	Dead       bool

	OnDamage func(h *Health)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health with current set to max.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the owner is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage applies damage unless the owner is dead or invincible, then
// starts an invincibility window of the given length. Returns true if damage
// was applied.
func (h *Health) ApplyDamage(amount int, invincibility float64) bool {
	if h == nil || h.Dead || h.Invincible > 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.Invincible = invincibility
	if h.OnDamage != nil {
		h.OnDamage(h)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h)
		}
	}
	return true
}

// Tick counts the invincibility window down.
func (h *Health) Tick(dt float64) {
	if h == nil || h.Invincible <= 0 {
		return
	}
	h.Invincible -= dt
	if h.Invincible < 0 {
		h.Invincible = 0
	}
}
