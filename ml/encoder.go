package ml

// Encoder maps categorical form values to the integer codes the classifier
// was trained on. The vocabulary is fixed at load time; lookups are pure and
// safe for concurrent use.
type Encoder struct {
	vocab map[string]map[string]int
}

// NewEncoder builds an encoder from per-field class lists. Codes follow the
// position of each class in its list, which must match the fit order of the
// original label encoders.
func NewEncoder(classes map[string][]string) *Encoder {
	vocab := make(map[string]map[string]int, len(classes))
	for field, values := range classes {
		codes := make(map[string]int, len(values))
		for i, v := range values {
			codes[v] = i
		}
		vocab[field] = codes
	}
	return &Encoder{vocab: vocab}
}

// Encode returns the integer code for raw in the given field's vocabulary.
// Any value outside the fitted vocabulary, including case or whitespace
// variants, fails with UnknownCategoryError.
func (e *Encoder) Encode(field, raw string) (int, error) {
	codes, ok := e.vocab[field]
	if !ok {
		return 0, &UnknownCategoryError{Field: field, Value: raw}
	}
	code, ok := codes[raw]
	if !ok {
		return 0, &UnknownCategoryError{Field: field, Value: raw}
	}
	return code, nil
}

// Classes returns the fitted vocabulary for a field in code order. Used by
// the boundary to render selectable options.
func (e *Encoder) Classes(field string) []string {
	codes, ok := e.vocab[field]
	if !ok {
		return nil
	}
	out := make([]string, len(codes))
	for v, i := range codes {
		out[i] = v
	}
	return out
}
