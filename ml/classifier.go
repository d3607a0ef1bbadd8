package ml

import (
	"fmt"
	"math"
)

// Classifier produces the probability of the positive (diabetic) class for
// a scaled feature vector. Implementations must be deterministic and safe
// for concurrent use; the returned value must be a valid probability.
type Classifier interface {
	Predict(v Vector) (float64, error)
}

const (
	activationRelu    = "relu"
	activationSigmoid = "sigmoid"
)

type layer struct {
	weights    [][]float64 // [input][output]
	biases     []float64
	activation string
}

// Network is a frozen feed-forward classifier evaluated in-process. Weights
// are loaded once at startup and never mutated.
type Network struct {
	layers []layer
}

// NewNetwork validates layer shapes end to end: the first layer must accept
// FeatureCount inputs, consecutive layers must chain, and the final layer
// must emit a single sigmoid unit.
func NewNetwork(layers []LayerSpec) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("network has no layers")
	}

	n := &Network{layers: make([]layer, 0, len(layers))}
	inputs := FeatureCount
	for i, spec := range layers {
		if len(spec.Weights) != inputs {
			return nil, fmt.Errorf("layer %d expects %d input rows, got %d", i, inputs, len(spec.Weights))
		}
		outputs := len(spec.Biases)
		if outputs == 0 {
			return nil, fmt.Errorf("layer %d has no units", i)
		}
		for r, row := range spec.Weights {
			if len(row) != outputs {
				return nil, fmt.Errorf("layer %d row %d has %d columns, want %d", i, r, len(row), outputs)
			}
		}
		switch spec.Activation {
		case activationRelu, activationSigmoid:
		default:
			return nil, fmt.Errorf("layer %d has unsupported activation %q", i, spec.Activation)
		}
		n.layers = append(n.layers, layer{
			weights:    spec.Weights,
			biases:     spec.Biases,
			activation: spec.Activation,
		})
		inputs = outputs
	}

	last := layers[len(layers)-1]
	if len(last.Biases) != 1 || last.Activation != activationSigmoid {
		return nil, fmt.Errorf("final layer must be a single sigmoid unit")
	}
	return n, nil
}

// Predict runs the forward pass and returns the sigmoid output.
func (n *Network) Predict(v Vector) (float64, error) {
	values := v[:]
	for _, l := range n.layers {
		next := make([]float64, len(l.biases))
		for out := range next {
			sum := l.biases[out]
			for in, x := range values {
				sum += x * l.weights[in][out]
			}
			next[out] = activate(l.activation, sum)
		}
		values = next
	}

	p := values[0]
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("classifier produced invalid probability %v", p)
	}
	return p, nil
}

func activate(name string, x float64) float64 {
	switch name {
	case activationRelu:
		if x < 0 {
			return 0
		}
		return x
	default: // sigmoid
		return 1 / (1 + math.Exp(-x))
	}
}
