package core

// Clone returns an independent copy of src. A nil src yields nil.
func Clone(src []float64) []float64 {
	if src == nil {
		return nil
	}
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
