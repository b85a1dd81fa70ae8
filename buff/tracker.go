package buff

// Active is a picked buff with its remaining waves
type Active struct {
	Definition
	Remaining int
}

// Permanent reports whether the buff never expires
func (a Active) Permanent() bool {
	return a.Remaining < 0
}

// Tracker holds the buffs picked during a run
type Tracker struct {
	active []Active
}

// Add activates d for its configured duration, a zero-wave definition is ignored
func (t *Tracker) Add(d Definition) {
	if d.Waves == 0 {
		return
	}
	t.active = append(t.active, Active{Definition: d, Remaining: d.Waves})
}

// AdvanceWave ages finite buffs by one wave and returns the ones that expired
func (t *Tracker) AdvanceWave() []Definition {
	var expired []Definition
	kept := t.active[:0]
	for _, a := range t.active {
		if !a.Permanent() {
			a.Remaining--
			if a.Remaining <= 0 {
				expired = append(expired, a.Definition)
				continue
			}
		}
		kept = append(kept, a)
	}
	t.active = kept
	return expired
}

// Modifiers multiplies every active buff into one set
func (t *Tracker) Modifiers() Modifiers {
	m := Neutral()
	for _, a := range t.active {
		m = m.Combine(a.Definition)
	}
	return m.floored()
}

// Active returns a copy of the active list
func (t *Tracker) Active() []Active {
	out := make([]Active, len(t.active))
	copy(out, t.active)
	return out
}

// Len returns the active count
func (t *Tracker) Len() int {
	return len(t.active)
}

// Reset drops all buffs
func (t *Tracker) Reset() {
	t.active = nil
}
