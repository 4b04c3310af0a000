package sessionpool

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name   string
	closed int
}

func (i *item) Close() {
	i.closed++
}

func TestPool_GetCreatesOnce(t *testing.T) {
	p := New[*item]()
	created := 0
	create := func() (*item, error) {
		created++
		return &item{name: "a"}, nil
	}

	first, err := p.Get("a", create)
	require.NoError(t, err)
	second, err := p.Get("a", create)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, p.Len())
}

func TestPool_CreateError(t *testing.T) {
	p := New[*item]()
	boom := errors.New("boom")

	_, err := p.Get("a", func() (*item, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, p.Len())
}

func TestPool_RemoveAndClose(t *testing.T) {
	p := New[*item]()
	a, _ := p.Get("a", func() (*item, error) { return &item{}, nil })
	b, _ := p.Get("b", func() (*item, error) { return &item{}, nil })

	assert.True(t, p.Remove("a"))
	assert.False(t, p.Remove("a"))
	assert.Equal(t, 1, a.closed)

	p.Close()
	p.Close()
	assert.Equal(t, 1, b.closed)

	_, err := p.Get("c", func() (*item, error) { return &item{}, nil })
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPool_ConcurrentGet(t *testing.T) {
	p := New[*item]()
	var mu sync.Mutex
	created := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Get("shared", func() (*item, error) {
				mu.Lock()
				created++
				mu.Unlock()
				return &item{}, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}
