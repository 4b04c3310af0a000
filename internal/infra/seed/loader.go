package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixtures []byte

// Load читает демо-данные из файла; пустой путь означает встроенный набор
// Все бронирования проверяются сразу, чтобы ошибка была видна при старте
func Load(path string) (*Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
		data = raw
	}

	return Parse(data)
}

// Parse разбирает YAML и валидирует бронирования
func Parse(data []byte) (*Fixtures, error) {
	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	for _, set := range [][]BookingFixture{fixtures.Customer.Bookings, fixtures.Provider.Bookings} {
		if _, err := BookingsToDomain(set, time.Time{}); err != nil {
			return nil, err
		}
	}

	return &fixtures, nil
}
