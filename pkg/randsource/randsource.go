package randsource

import (
	"crypto/rand"
	"encoding/binary"
)

// Crypto равномерная выборка из [0, 1) на основе crypto/rand
type Crypto struct{}

// NewCrypto создает криптографический источник случайных чисел
func NewCrypto() *Crypto {
	return &Crypto{}
}

// Float64 возвращает значение из [0, 1): uint32 / 2^32
// Если системный источник недоступен, возвращает 0
func (c *Crypto) Float64() float64 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	return float64(binary.LittleEndian.Uint32(buf[:])) / (1 << 32)
}

// Sequence детерминированный источник: возвращает значения по кругу
// Используется в тестах и для воспроизводимых демо-сценариев
type Sequence struct {
	values []float64
	pos    int
}

// NewSequence создает источник из заданных значений
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}
