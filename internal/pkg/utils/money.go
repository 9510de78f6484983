package utils

import "github.com/shopspring/decimal"

// Round2 округляет до двух знаков после запятой (цены в евро, расстояния в км)
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// PriceRange строит вилку цены вокруг точечной оценки: нижняя граница не уходит ниже нуля
func PriceRange(predicted, margin float64) (low, high float64) {
	p := decimal.NewFromFloat(predicted)
	m := decimal.NewFromFloat(margin)

	lowDec := decimal.Max(decimal.Zero, p.Sub(m))
	highDec := p.Add(m)

	low, _ = lowDec.Float64()
	high, _ = highDec.Float64()
	return low, high
}
