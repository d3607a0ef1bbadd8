package ml

import "fmt"

// FeatureCount is the dimensionality of the classifier's input. The feature
// order is a hard contract shared by the encoder, scaler and classifier:
// [gender_code, age, hypertension, heart_disease, smoking_code, bmi,
// hba1c, glucose].
const FeatureCount = 8

// Vector is one encoded feature vector in the fixed feature order.
type Vector [FeatureCount]float64

// Scaler applies a pre-fitted per-feature standardization (x-mean)/scale.
// It is deterministic and safe for concurrent use.
type Scaler struct {
	mean  Vector
	scale Vector
}

// NewScaler builds a scaler from fitted parameters. Both slices must carry
// exactly one entry per feature; a scale of zero would divide away a feature
// and is rejected.
func NewScaler(mean, scale []float64) (*Scaler, error) {
	if len(mean) != FeatureCount || len(scale) != FeatureCount {
		return nil, fmt.Errorf("scaler parameters must have %d entries, got mean=%d scale=%d",
			FeatureCount, len(mean), len(scale))
	}
	s := &Scaler{}
	for i := 0; i < FeatureCount; i++ {
		if scale[i] == 0 {
			return nil, fmt.Errorf("scaler has zero scale at position %d", i)
		}
		s.mean[i] = mean[i]
		s.scale[i] = scale[i]
	}
	return s, nil
}

// Scale transforms a feature vector into the distribution the classifier
// was trained on.
func (s *Scaler) Scale(v Vector) Vector {
	var out Vector
	for i := 0; i < FeatureCount; i++ {
		out[i] = (v[i] - s.mean[i]) / s.scale[i]
	}
	return out
}
