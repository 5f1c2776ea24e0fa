// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел, чтобы вся
// сессия шла от одного сида и воспроизводилась.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает фактический сид, с которым создан сервис.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Reseed restarts the sequence from the original seed.
func (s *PRNGService) Reseed() {
	s.rng = rand.New(rand.NewSource(s.seed))
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a value in [min, min+span).
func (s *PRNGService) Range(min, span float64) float64 {
	return min + s.rng.Float64()*span
}

// Spread returns a value in (-amp, amp).
func (s *PRNGService) Spread(amp float64) float64 {
	return (s.rng.Float64() - 0.5) * 2 * amp
}
