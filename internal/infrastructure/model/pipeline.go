package model

import (
	"context"
	"fmt"
	"math"

	"github.com/house-price-service/internal/domain"
	"github.com/house-price-service/internal/domain/repository"
)

var _ repository.PriceModel = (*Pipeline)(nil)

// Pipeline - модель, загруженная из артефакта и вычисляемая в процессе
type Pipeline struct {
	artifact *Artifact
	index    []map[string]int // категория -> позиция внутри one-hot блока
}

// NewPipeline строит модель из проверенного артефакта
func NewPipeline(a *Artifact) (*Pipeline, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	index := make([]map[string]int, len(a.Categorical))
	for i, f := range a.Categorical {
		m := make(map[string]int, len(f.Categories))
		for j, c := range f.Categories {
			m[c] = j
		}
		index[i] = m
	}

	return &Pipeline{artifact: a, index: index}, nil
}

// ModelType - тип регрессора из артефакта
func (p *Pipeline) ModelType() string {
	return p.artifact.ModelType
}

func (p *Pipeline) Predict(ctx context.Context, records []domain.FeatureRecord) ([]float64, error) {
	out := make([]float64, len(records))
	x := make([]float64, p.artifact.Width())

	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := p.encode(r, x); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		score := p.score(x)
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, fmt.Errorf("record %d: %w", i, domain.ErrNonFiniteScore)
		}
		out[i] = score
	}

	return out, nil
}

// encode заполняет x: сначала отмасштабированные числовые признаки, затем one-hot блоки
func (p *Pipeline) encode(r domain.FeatureRecord, x []float64) error {
	pos := 0
	for _, f := range p.artifact.Numeric {
		v, ok := r.Numeric(f.Name)
		if !ok {
			return fmt.Errorf("%w: numeric feature %q", domain.ErrFeatureMismatch, f.Name)
		}
		scale := f.Scale
		if scale == 0 {
			scale = 1
		}
		x[pos] = (v - f.Mean) / scale
		pos++
	}

	for i, f := range p.artifact.Categorical {
		v, ok := r.Categorical(f.Name)
		if !ok {
			return fmt.Errorf("%w: categorical feature %q", domain.ErrFeatureMismatch, f.Name)
		}

		block := x[pos : pos+len(f.Categories)]
		for j := range block {
			block[j] = 0
		}

		j, known := p.index[i][v]
		switch {
		case known:
			block[j] = 1
		case f.HandleUnknown == HandleUnknownIgnore:
			// все нули
		default:
			return fmt.Errorf("%w: %s=%q", domain.ErrUnknownCategory, f.Name, v)
		}
		pos += len(f.Categories)
	}

	return nil
}

func (p *Pipeline) score(x []float64) float64 {
	reg := p.artifact.Regressor
	switch reg.Kind {
	case RegressorLinear:
		sum := reg.Intercept
		for i, c := range reg.Coefficients {
			sum += c * x[i]
		}
		return sum
	default:
		sum := reg.BaseScore
		for _, t := range reg.Trees {
			sum += t.eval(x)
		}
		return sum
	}
}
