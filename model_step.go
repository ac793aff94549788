package cellpotts

// ModelStep runs V Metropolis attempts in sequence, increments the step
// counter once, then invokes every penalty's OnTick callback strictly
// after all V attempts — penalties never see a partially-stepped lattice.
func (s *Simulation) ModelStep() {
	v := s.Space.VertexCount()
	for i := 0; i < v; i++ {
		s.MHStep()
	}
	s.stepCount++

	ctx := s.ctx()
	for _, p := range s.Penalties {
		p.OnTick(ctx)
	}
}

// Observer receives a synchronous callback between model steps, e.g. to
// stream array_ids/array_types to a renderer. An external
// cancellation predicate is a sibling of this hook, not the same thing:
// Observer never influences whether the run continues.
type Observer interface {
	OnStep(s *Simulation)
}

// Run executes n model steps, invoking every observer after each one, and
// stops early if cancel returns false. cancel may be nil to run
// unconditionally; it is the sole cancellation mechanism, there is no
// wall-clock timeout.
func (s *Simulation) Run(n int, cancel func() bool, observers ...Observer) {
	for i := 0; i < n; i++ {
		s.ModelStep()
		for _, o := range observers {
			o.OnStep(s)
		}
		if cancel != nil && !cancel() {
			return
		}
	}
}
