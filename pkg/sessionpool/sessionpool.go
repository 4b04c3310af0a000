package sessionpool

import (
	"errors"
	"sync"
)

// ErrClosed возвращается после закрытия пула
var ErrClosed = errors.New("sessionpool: pool closed")

// Closer ресурс сессии, освобождаемый при удалении из пула
type Closer interface {
	Close()
}

// Pool сессии по ключу (email пользователя), создаваемые лениво
type Pool[T Closer] struct {
	mu     sync.Mutex
	items  map[string]T
	closed bool
}

// New создает пустой пул
func New[T Closer]() *Pool[T] {
	return &Pool[T]{items: make(map[string]T)}
}

// Get возвращает сессию по ключу, создавая ее через create при первом обращении
func (p *Pool[T]) Get(key string, create func() (T, error)) (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var zero T
	if p.closed {
		return zero, ErrClosed
	}

	if item, ok := p.items[key]; ok {
		return item, nil
	}

	item, err := create()
	if err != nil {
		return zero, err
	}
	p.items[key] = item

	return item, nil
}

// Remove закрывает и удаляет сессию; отсутствующий ключ игнорируется
func (p *Pool[T]) Remove(key string) bool {
	p.mu.Lock()
	item, ok := p.items[key]
	delete(p.items, key)
	p.mu.Unlock()

	if ok {
		item.Close()
	}
	return ok
}

// Len количество открытых сессий
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// Close закрывает все сессии; повторный вызов ничего не делает
func (p *Pool[T]) Close() {
	p.mu.Lock()
	items := p.items
	p.items = make(map[string]T)
	p.closed = true
	p.mu.Unlock()

	for _, item := range items {
		item.Close()
	}
}
