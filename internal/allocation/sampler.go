package allocation

import (
	"math/rand"
	"time"

	"exam-service/internal/models"
)

// Sampler draws uniform random subsets of questions. The random source
// is injectable so tests can assert exact output sequences.
type Sampler struct {
	rand *rand.Rand
}

// NewSampler creates a sampler backed by a time-seeded source.
func NewSampler() *Sampler {
	return &Sampler{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSamplerWithSeed creates a sampler with a fixed seed for
// deterministic selection in tests.
func NewSamplerWithSeed(seed int64) *Sampler {
	return &Sampler{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Sample returns a uniformly random subset of exactly count questions
// with no repeats. If count covers the whole pool the pool is returned
// unchanged.
func (s *Sampler) Sample(pool []models.Question, count int) []models.Question {
	if count <= 0 {
		return []models.Question{}
	}
	if count >= len(pool) {
		return pool
	}

	// Fisher-Yates shuffle of a copy, then slice.
	shuffled := make([]models.Question, len(pool))
	copy(shuffled, pool)
	s.shuffle(shuffled)
	return shuffled[:count]
}

// Shuffle uniformly shuffles questions in place, used as the optional
// final pass so per-bucket grouping is not visible in question order.
func (s *Sampler) Shuffle(questions []models.Question) {
	s.shuffle(questions)
}

func (s *Sampler) shuffle(questions []models.Question) {
	for i := len(questions) - 1; i > 0; i-- {
		j := s.rand.Intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}
