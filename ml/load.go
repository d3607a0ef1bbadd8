package ml

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"medipulse/config"
)

// preprocessFile holds the fitted encoder vocabularies and scaler parameters.
type preprocessFile struct {
	Encoders map[string][]string `json:"encoders"`
	Scaler   struct {
		Mean  []float64 `json:"mean"`
		Scale []float64 `json:"scale"`
	} `json:"scaler"`
}

// LayerSpec is one dense layer of the exported network.
type LayerSpec struct {
	Weights    [][]float64 `json:"weights"`
	Biases     []float64   `json:"biases"`
	Activation string      `json:"activation"`
}

type networkFile struct {
	Layers []LayerSpec `json:"layers"`
}

// Model is the process-wide pipeline, loaded once at startup and shared
// read-only by all requests.
var Model *Pipeline

// LoadModel initializes the global pipeline from configuration. Malformed
// artifacts are a startup fault, never a per-request error.
func LoadModel() {
	pipeline, err := Load(config.AppConfig.ModelDir, config.AppConfig.ModelURL)
	if err != nil {
		log.Fatalf("Failed to load prediction model: %v", err)
	}
	Model = pipeline
	if config.AppConfig.ModelURL != "" {
		log.Printf("Prediction model ready (remote classifier at %s)", config.AppConfig.ModelURL)
	} else {
		log.Printf("Prediction model ready (local network from %s)", config.AppConfig.ModelDir)
	}
}

// Load builds a pipeline from the artifact directory. When modelURL is set
// the classifier runs remotely and only the preprocess artifacts are read.
func Load(dir, modelURL string) (*Pipeline, error) {
	var pre preprocessFile
	if err := readJSON(filepath.Join(dir, "preprocess.json"), &pre); err != nil {
		return nil, fmt.Errorf("preprocess artifacts: %w", err)
	}
	for _, field := range []string{FieldGender, FieldSmokingHistory} {
		if len(pre.Encoders[field]) == 0 {
			return nil, fmt.Errorf("preprocess artifacts: no fitted classes for %s", field)
		}
	}
	encoder := NewEncoder(pre.Encoders)

	scaler, err := NewScaler(pre.Scaler.Mean, pre.Scaler.Scale)
	if err != nil {
		return nil, fmt.Errorf("preprocess artifacts: %w", err)
	}

	var classifier Classifier
	if modelURL != "" {
		classifier = NewRemoteClassifier(modelURL)
	} else {
		var nf networkFile
		if err := readJSON(filepath.Join(dir, "diabetes_ann.json"), &nf); err != nil {
			return nil, fmt.Errorf("network artifacts: %w", err)
		}
		classifier, err = NewNetwork(nf.Layers)
		if err != nil {
			return nil, fmt.Errorf("network artifacts: %w", err)
		}
	}

	return NewPipeline(encoder, scaler, classifier), nil
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
