package optimization

// stubSource is a deterministic RandomSource for tests. Unset hooks fall
// back to the least surprising draw: 0 from Float64 and Intn, lo from
// Uniform, mean from Norm.
type stubSource struct {
	float64Fn func() float64
	uniformFn func(lo, hi float64) float64
	normFn    func(mean, stdev float64) float64
	intnFn    func(n int) int
}

func (s *stubSource) Float64() float64 {
	if s.float64Fn != nil {
		return s.float64Fn()
	}
	return 0
}

func (s *stubSource) Uniform(lo, hi float64) float64 {
	if s.uniformFn != nil {
		return s.uniformFn(lo, hi)
	}
	return lo
}

func (s *stubSource) Norm(mean, stdev float64) float64 {
	if s.normFn != nil {
		return s.normFn(mean, stdev)
	}
	return mean
}

func (s *stubSource) Intn(n int) int {
	if s.intnFn != nil {
		return s.intnFn(n)
	}
	return 0
}

// fixedUniform returns a stub whose Uniform always yields v, pinning every
// sampled position to (v, v).
func fixedUniform(v float64) *stubSource {
	return &stubSource{
		uniformFn: func(lo, hi float64) float64 { return v },
	}
}
