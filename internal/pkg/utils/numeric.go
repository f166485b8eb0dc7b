package utils

import "math"

// FloatOrDefault возвращает значение указателя или default, если значение
// отсутствует либо не является конечным числом
func FloatOrDefault(v *float64, def float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return def
	}
	return *v
}

// IntOrDefault возвращает значение указателя или default
func IntOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// FirstFloat возвращает первое присутствующее значение из упорядоченного
// списка источников, иначе default
func FirstFloat(def float64, sources ...*float64) float64 {
	for _, s := range sources {
		if s != nil && !math.IsNaN(*s) && !math.IsInf(*s, 0) {
			return *s
		}
	}
	return def
}

// Clip ограничивает значение диапазоном [lo, hi]
func Clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsFinite проверяет, что значение — конечное число
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FloatPtr возвращает указатель на значение
func FloatPtr(v float64) *float64 {
	return &v
}
