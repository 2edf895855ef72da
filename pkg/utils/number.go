package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Median retorna o elemento na posição len/2 da fatia ordenada. Para fatias
// pares devolve o maior dos dois centrais, que é o comportamento esperado
// pelo motor de previsão.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)

	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	return sorted[len(sorted)/2]
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// CoefficientOfVariation retorna o desvio padrão como percentual da média.
// Média 0 retorna 0 para não propagar NaN.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 || len(values) == 0 {
		return 0
	}

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return math.Sqrt(variance) / mean * 100
}
