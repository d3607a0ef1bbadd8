package ml

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Required form field names, in the canonical validation and feature order.
const (
	FieldGender         = "gender"
	FieldAge            = "age"
	FieldHypertension   = "hypertension"
	FieldHeartDisease   = "heart_disease"
	FieldSmokingHistory = "smoking_history"
	FieldBMI            = "bmi"
	FieldHbA1c          = "HbA1c_level"
	FieldBloodGlucose   = "blood_glucose_level"
)

// fieldOrder fixes the order fields are checked in, and the order their
// encoded values occupy in the feature vector.
var fieldOrder = [FeatureCount]string{
	FieldGender,
	FieldAge,
	FieldHypertension,
	FieldHeartDisease,
	FieldSmokingHistory,
	FieldBMI,
	FieldHbA1c,
	FieldBloodGlucose,
}

// Result labels and their canonical user-facing messages.
const (
	LabelDiabetic    = "diabetic"
	LabelNotDiabetic = "not_diabetic"

	MessageDiabetic    = "⚠️ High Diabetes Risk Detected"
	MessageNotDiabetic = "✅ Low Diabetes Risk"
)

// riskThreshold is the percentage at and above which a prediction is
// labeled diabetic. The boundary is inclusive: exactly 50.0 is diabetic.
const riskThreshold = 50.0

// PredictionInput is the validated, typed form of one prediction request.
// Field order mirrors the canonical field order so range violations are
// reported first-in-order.
type PredictionInput struct {
	Gender         string  `json:"gender"`
	Age            float64 `json:"age" validate:"gt=0"`
	Hypertension   bool    `json:"hypertension"`
	HeartDisease   bool    `json:"heart_disease"`
	SmokingHistory string  `json:"smoking_history"`
	BMI            float64 `json:"bmi" validate:"gt=0"`
	HbA1cLevel     float64 `json:"HbA1c_level" validate:"gt=0"`
	BloodGlucose   float64 `json:"blood_glucose_level" validate:"gt=0"`
}

// fieldNames maps PredictionInput struct fields back to their form names
// for error reporting.
var fieldNames = map[string]string{
	"Gender":         FieldGender,
	"Age":            FieldAge,
	"Hypertension":   FieldHypertension,
	"HeartDisease":   FieldHeartDisease,
	"SmokingHistory": FieldSmokingHistory,
	"BMI":            FieldBMI,
	"HbA1cLevel":     FieldHbA1c,
	"BloodGlucose":   FieldBloodGlucose,
}

// PredictionResult is the immutable outcome of one prediction.
type PredictionResult struct {
	Probability float64 `json:"-"`
	Percentage  float64 `json:"probability"`
	Label       string  `json:"result_type"`
	Message     string  `json:"result"`
}

// Pipeline orchestrates validation, encoding, scaling, inference and
// labeling. It holds no mutable state and performs no I/O, so a single
// instance serves all in-flight requests.
type Pipeline struct {
	encoder    *Encoder
	scaler     *Scaler
	classifier Classifier
	check      *validator.Validate
}

func NewPipeline(encoder *Encoder, scaler *Scaler, classifier Classifier) *Pipeline {
	return &Pipeline{
		encoder:    encoder,
		scaler:     scaler,
		classifier: classifier,
		check:      validator.New(),
	}
}

// Validate parses the raw form fields into a typed PredictionInput. Fields
// are checked in the canonical order and the first failure wins: an absent
// field fails with MissingFieldError, a present but unparseable or
// out-of-range one with InvalidValueError.
func (p *Pipeline) Validate(fields map[string]string) (PredictionInput, error) {
	var in PredictionInput

	for _, name := range fieldOrder {
		raw, ok := fields[name]
		if !ok {
			return PredictionInput{}, &MissingFieldError{Field: name}
		}

		switch name {
		case FieldGender:
			in.Gender = raw
		case FieldSmokingHistory:
			in.SmokingHistory = raw
		case FieldHypertension, FieldHeartDisease:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return PredictionInput{}, &InvalidValueError{Field: name, Value: raw}
			}
			if name == FieldHypertension {
				in.Hypertension = v != 0
			} else {
				in.HeartDisease = v != 0
			}
		default:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return PredictionInput{}, &InvalidValueError{Field: name, Value: raw}
			}
			switch name {
			case FieldAge:
				in.Age = v
			case FieldBMI:
				in.BMI = v
			case FieldHbA1c:
				in.HbA1cLevel = v
			case FieldBloodGlucose:
				in.BloodGlucose = v
			}
		}
	}

	// Range constraints on the typed struct. Struct field order matches
	// the canonical field order, so the first reported violation is the
	// first in order.
	if err := p.check.Struct(in); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := fieldNames[errs[0].StructField()]
			return PredictionInput{}, &InvalidValueError{Field: field, Value: fields[field]}
		}
		return PredictionInput{}, err
	}

	return in, nil
}

// Predict encodes the categorical fields, assembles the feature vector in
// the fixed order, scales it and invokes the classifier. Encoding failures
// abort before the classifier is ever called.
func (p *Pipeline) Predict(in PredictionInput) (PredictionResult, error) {
	genderCode, err := p.encoder.Encode(FieldGender, in.Gender)
	if err != nil {
		return PredictionResult{}, err
	}
	smokingCode, err := p.encoder.Encode(FieldSmokingHistory, in.SmokingHistory)
	if err != nil {
		return PredictionResult{}, err
	}

	vec := Vector{
		float64(genderCode),
		in.Age,
		boolToFeature(in.Hypertension),
		boolToFeature(in.HeartDisease),
		float64(smokingCode),
		in.BMI,
		in.HbA1cLevel,
		in.BloodGlucose,
	}

	probability, err := p.classifier.Predict(p.scaler.Scale(vec))
	if err != nil {
		return PredictionResult{}, fmt.Errorf("classifier: %w", err)
	}
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return PredictionResult{}, fmt.Errorf("classifier returned invalid probability %v", probability)
	}

	percentage := math.Round(probability*1000) / 10

	result := PredictionResult{
		Probability: probability,
		Percentage:  percentage,
	}
	if percentage >= riskThreshold {
		result.Label = LabelDiabetic
		result.Message = MessageDiabetic
	} else {
		result.Label = LabelNotDiabetic
		result.Message = MessageNotDiabetic
	}
	return result, nil
}

// Encoder exposes the fitted encoder for boundary rendering needs.
func (p *Pipeline) Encoder() *Encoder {
	return p.encoder
}

func boolToFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
