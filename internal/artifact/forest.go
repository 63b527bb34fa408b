package artifact

import (
	"errors"
	"fmt"
)

// Class labels produced by the classifier. The mapping is fixed by the
// training data: 0 is malignant, 1 is benign.
const (
	ClassMalignant = 0
	ClassBenign    = 1
)

// TreeNode is one node of a decision tree stored as a flat array with the
// root at index 0. Leaves carry the class counts observed at training time
// so the forest can average per-class probabilities.
type TreeNode struct {
	FeatureIdx  int       `json:"feature_idx"`
	Threshold   float64   `json:"threshold"`
	LeftChild   int       `json:"left_child"`
	RightChild  int       `json:"right_child"`
	ClassCounts []float64 `json:"class_counts,omitempty"`
	IsLeaf      bool      `json:"is_leaf"`
}

// Tree is a single decision tree of the ensemble.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// Forest is a trained random-forest classifier over two classes.
type Forest struct {
	NClasses int    `json:"n_classes"`
	Trees    []Tree `json:"trees"`
}

// Predict routes a scaled feature vector through every tree and returns the
// predicted class plus the averaged per-class probability distribution.
// Ties go to the lowest class index, matching the training library's argmax.
func (f *Forest) Predict(vector []float64) (int, []float64, error) {
	if len(f.Trees) == 0 {
		return 0, nil, errors.New("forest has no trees")
	}

	probs := make([]float64, f.NClasses)
	for ti := range f.Trees {
		leaf, err := f.Trees[ti].leaf(vector)
		if err != nil {
			return 0, nil, fmt.Errorf("tree %d: %w", ti, err)
		}

		total := 0.0
		for _, count := range leaf.ClassCounts {
			total += count
		}
		if total <= 0 {
			return 0, nil, fmt.Errorf("tree %d: leaf carries no samples", ti)
		}
		for class, count := range leaf.ClassCounts {
			probs[class] += count / total
		}
	}

	for i := range probs {
		probs[i] /= float64(len(f.Trees))
	}

	label := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[label] {
			label = i
		}
	}
	return label, probs, nil
}

// leaf walks the flat node array from the root to the leaf selected by
// vector. Structural bounds were checked at load time; the index guards
// here keep a corrupt tree from panicking the request path.
func (t *Tree) leaf(vector []float64) (*TreeNode, error) {
	if len(t.Nodes) == 0 {
		return nil, errors.New("tree is empty")
	}

	idx := 0
	for {
		node := &t.Nodes[idx]
		if node.IsLeaf {
			return node, nil
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= len(vector) {
			return nil, fmt.Errorf("node %d references feature %d outside vector of width %d", idx, node.FeatureIdx, len(vector))
		}
		if vector[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return nil, fmt.Errorf("child index %d out of range", idx)
		}
	}
}

// Validate checks the structural invariants of the forest against the
// expected feature width. It runs once at load time so Predict can assume
// well-formed trees afterwards.
func (f *Forest) Validate(featureCount int) error {
	if f.NClasses != 2 {
		return fmt.Errorf("expected a binary classifier, got %d classes", f.NClasses)
	}
	if len(f.Trees) == 0 {
		return errors.New("classifier has no trees")
	}

	for ti, tree := range f.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, node := range tree.Nodes {
			if node.IsLeaf {
				if len(node.ClassCounts) != f.NClasses {
					return fmt.Errorf("tree %d node %d: leaf carries %d class counts, want %d", ti, ni, len(node.ClassCounts), f.NClasses)
				}
				total := 0.0
				for _, count := range node.ClassCounts {
					if count < 0 {
						return fmt.Errorf("tree %d node %d: negative class count", ti, ni)
					}
					total += count
				}
				if total <= 0 {
					return fmt.Errorf("tree %d node %d: leaf carries no samples", ti, ni)
				}
				continue
			}

			if node.FeatureIdx < 0 || node.FeatureIdx >= featureCount {
				return fmt.Errorf("tree %d node %d: feature index %d outside width %d", ti, ni, node.FeatureIdx, featureCount)
			}
			// Children must sit after their parent in the flat layout, which
			// also guarantees traversal terminates.
			if node.LeftChild <= ni || node.LeftChild >= len(tree.Nodes) {
				return fmt.Errorf("tree %d node %d: left child %d out of range", ti, ni, node.LeftChild)
			}
			if node.RightChild <= ni || node.RightChild >= len(tree.Nodes) {
				return fmt.Errorf("tree %d node %d: right child %d out of range", ti, ni, node.RightChild)
			}
		}
	}
	return nil
}
