package svm

import "fmt"

// EncodeLabels maps each label to +1 or -1.
// The label at outputs[0] becomes +1 and the label at outputs[1] becomes -1.
// If outputs is nil, it is derived from the distinct labels in order of
// first appearance, and may then contain a single label.
func encodeLabels[L comparable](labels []L, outputs []L) ([]L, []float64, error) {
	if len(labels) == 0 {
		return nil, nil, fmt.Errorf("%w: no labels", ErrEmpty)
	}
	if outputs != nil {
		if len(outputs) != 2 || outputs[0] == outputs[1] {
			return nil, nil, fmt.Errorf("%w: need two distinct labels, got %v", ErrOutputs, outputs)
		}
		outputs = []L{outputs[0], outputs[1]}
	} else {
		outputs = distinct(labels)
		if len(outputs) > 2 {
			return nil, nil, fmt.Errorf("%w: found %d", ErrTooManyLabels, len(outputs))
		}
	}

	y := make([]float64, len(labels))
	for i, label := range labels {
		j := indexOf(outputs, label)
		if j < 0 {
			return nil, nil, fmt.Errorf("%w: label %v of example %d is not one of %v", ErrOutputs, label, i, outputs)
		}
		y[i] = float64(1 - 2*j)
	}
	return outputs, y, nil
}

// Distinct returns the unique labels in order of first appearance.
func distinct[L comparable](labels []L) []L {
	var (
		out  []L
		seen = make(map[L]bool)
	)
	for _, label := range labels {
		if seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}

func indexOf[L comparable](s []L, v L) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}
	return -1
}
