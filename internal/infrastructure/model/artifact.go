package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/house-price-service/internal/domain"
)

const (
	RegressorGBTree = "gbtree"
	RegressorLinear = "linear"

	HandleUnknownError  = "error"
	HandleUnknownIgnore = "ignore"
)

// Artifact - обученный пайплайн в сериализованном виде:
// StandardScaler для числовых признаков, OneHotEncoder для категориальных и регрессор
type Artifact struct {
	FormatVersion int                  `json:"format_version"`
	ModelType     string               `json:"model_type"`
	Numeric       []NumericFeature     `json:"numeric_features"`
	Categorical   []CategoricalFeature `json:"categorical_features"`
	Regressor     Regressor            `json:"regressor"`
}

type NumericFeature struct {
	Name  string  `json:"name"`
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
}

type CategoricalFeature struct {
	Name          string   `json:"name"`
	Categories    []string `json:"categories"`
	HandleUnknown string   `json:"handle_unknown"`
}

type Regressor struct {
	Kind string `json:"kind"`

	// gbtree
	BaseScore float64 `json:"base_score"`
	Trees     []Tree  `json:"trees,omitempty"`

	// linear
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients,omitempty"`
}

// Tree - дерево в плоском виде, корень в Nodes[0]
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// TreeNode - либо лист (Leaf != nil), либо разбиение x[Feature] < Threshold ? Left : Right
type TreeNode struct {
	Feature     int      `json:"feature"`
	Threshold   float64  `json:"threshold"`
	Left        int      `json:"left"`
	Right       int      `json:"right"`
	DefaultLeft bool     `json:"default_left"`
	Leaf        *float64 `json:"leaf,omitempty"`
}

// ReadArtifactFile читает артефакт с диска
func ReadArtifactFile(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()

	return DecodeArtifact(f)
}

// DecodeArtifact разбирает и проверяет артефакт
func DecodeArtifact(r io.Reader) (*Artifact, error) {
	var a Artifact
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidArtifact, err)
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Width - размер закодированного вектора признаков
func (a *Artifact) Width() int {
	n := len(a.Numeric)
	for _, c := range a.Categorical {
		n += len(c.Categories)
	}
	return n
}

// Validate проверяет, что артефакт покрывает ровно схему FeatureRecord и регрессор согласован с ней
func (a *Artifact) Validate() error {
	seen := make(map[string]bool)
	var probe domain.FeatureRecord

	for _, f := range a.Numeric {
		if _, ok := probe.Numeric(f.Name); !ok {
			return fmt.Errorf("%w: %q is not a numeric feature", domain.ErrFeatureMismatch, f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate feature %q", ErrInvalidArtifact, f.Name)
		}
		seen[f.Name] = true
	}

	for _, f := range a.Categorical {
		if _, ok := probe.Categorical(f.Name); !ok {
			return fmt.Errorf("%w: %q is not a categorical feature", domain.ErrFeatureMismatch, f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate feature %q", ErrInvalidArtifact, f.Name)
		}
		seen[f.Name] = true

		switch f.HandleUnknown {
		case "", HandleUnknownError, HandleUnknownIgnore:
		default:
			return fmt.Errorf("%w: feature %q: handle_unknown %q", ErrInvalidArtifact, f.Name, f.HandleUnknown)
		}
	}

	required := []string{
		domain.FeatureSurface,
		domain.FeatureRooms,
		domain.FeatureLatitude,
		domain.FeatureLongitude,
		domain.FeatureHasLand,
		domain.FeatureMetroDistanceKm,
		domain.FeatureMetroName,
	}
	for _, name := range required {
		if !seen[name] {
			return fmt.Errorf("%w: feature %q missing from artifact", domain.ErrFeatureMismatch, name)
		}
	}

	width := a.Width()
	switch a.Regressor.Kind {
	case RegressorLinear:
		if len(a.Regressor.Coefficients) != width {
			return fmt.Errorf("%w: linear regressor has %d coefficients, want %d",
				ErrInvalidArtifact, len(a.Regressor.Coefficients), width)
		}
	case RegressorGBTree:
		if len(a.Regressor.Trees) == 0 {
			return fmt.Errorf("%w: gbtree regressor has no trees", ErrInvalidArtifact)
		}
		for i, t := range a.Regressor.Trees {
			if err := t.validate(width); err != nil {
				return fmt.Errorf("%w: tree %d: %v", ErrInvalidArtifact, i, err)
			}
		}
	default:
		return fmt.Errorf("%w: unknown regressor kind %q", ErrInvalidArtifact, a.Regressor.Kind)
	}

	return nil
}
