package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const validPreprocess = `{
	"encoders": {
		"gender": ["Female", "Male", "Other"],
		"smoking_history": ["No Info", "current", "ever", "former", "never", "not current"]
	},
	"scaler": {
		"mean":  [0, 0, 0, 0, 0, 0, 0, 0],
		"scale": [1, 1, 1, 1, 1, 1, 1, 1]
	}
}`

const validNetwork = `{
	"layers": [{
		"weights": [[0], [0], [0], [0], [0], [0], [0], [0]],
		"biases": [0],
		"activation": "sigmoid"
	}]
}`

func TestLoadRepositoryArtifacts(t *testing.T) {
	pipeline, err := Load("../model", "")
	require.NoError(t, err)

	in, err := pipeline.Validate(map[string]string{
		FieldGender:         "Female",
		FieldAge:            "45",
		FieldHypertension:   "0",
		FieldHeartDisease:   "0",
		FieldSmokingHistory: "never",
		FieldBMI:            "27.3",
		FieldHbA1c:          "6.1",
		FieldBloodGlucose:   "140",
	})
	require.NoError(t, err)

	res, err := pipeline.Predict(in)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Percentage, 0.0)
	assert.LessOrEqual(t, res.Percentage, 100.0)
}

func TestLoadMissingArtifacts(t *testing.T) {
	_, err := Load(t.TempDir(), "")
	assert.Error(t, err)
}

func TestLoadMalformedNetwork(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "preprocess.json", validPreprocess)
	writeArtifact(t, dir, "diabetes_ann.json", `{"layers": [{"weights": [[0]], "biases": [0], "activation": "sigmoid"}]}`)

	_, err := Load(dir, "")
	assert.Error(t, err)
}

func TestLoadMissingEncoderClasses(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "preprocess.json", `{
		"encoders": {"gender": ["Female", "Male", "Other"]},
		"scaler": {"mean": [0,0,0,0,0,0,0,0], "scale": [1,1,1,1,1,1,1,1]}
	}`)
	writeArtifact(t, dir, "diabetes_ann.json", validNetwork)

	_, err := Load(dir, "")
	assert.Error(t, err)
}

func TestLoadRemoteSkipsNetworkArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "preprocess.json", validPreprocess)

	pipeline, err := Load(dir, "http://localhost:9999")
	require.NoError(t, err)
	assert.IsType(t, &RemoteClassifier{}, pipeline.classifier)
}
