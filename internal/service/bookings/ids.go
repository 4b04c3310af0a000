package bookings

import "fmt"

const idPrefix = "CW"

// idGenerator выдает последовательные идентификаторы CW001, CW002, ...
// Пропускает идентификаторы, уже занятые в наборе
type idGenerator struct {
	next int
}

func (g *idGenerator) generate(exists func(id string) bool) string {
	for {
		g.next++
		id := fmt.Sprintf("%s%03d", idPrefix, g.next)
		if !exists(id) {
			return id
		}
	}
}
