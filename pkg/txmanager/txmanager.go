package txmanager

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrClosed возвращается, если очередь мутаций уже остановлена
var ErrClosed = errors.New("txmanager: queue is closed")

type txKey struct{}

type job struct {
	ctx    context.Context
	fn     func(ctx context.Context) error
	result chan error
}

// TransactionManager очередь мутаций: все функции выполняются строго по одной
// в единственной горутине-воркере. Это даёт ту же атомарность, что и однопоточный
// обработчик событий: внутри fn никакая другая мутация не может вклиниться.
type TransactionManager struct {
	jobs      chan job
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewTransactionManager создает очередь и запускает воркер
func NewTransactionManager() *TransactionManager {
	m := &TransactionManager{
		jobs: make(chan job),
		done: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.run()

	return m
}

// DoSerializable выполняет fn эксклюзивно относительно всех остальных вызовов
// Вложенный вызов из fn выполняется сразу, без повторной постановки в очередь
// Отмена ctx прерывает только ожидание места в очереди: принятая задача
// выполняется до конца, и вызывающий получает её результат
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if IsInTransaction(ctx) {
		return fn(ctx)
	}

	j := job{
		ctx:    ctx,
		fn:     fn,
		result: make(chan error, 1),
	}

	select {
	case m.jobs <- j:
	case <-m.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	return <-j.result
}

// DoReadOnly выполняет чтение в той же очереди, чтобы не видеть промежуточных состояний
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.DoSerializable(ctx, fn)
}

// Close останавливает воркер. Уже принятая задача дорабатывает до конца.
// Нельзя вызывать из функции, выполняющейся в очереди.
func (m *TransactionManager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
	m.wg.Wait()
}

// IsInTransaction сообщает, выполняется ли код внутри очереди мутаций
func IsInTransaction(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

func (m *TransactionManager) run() {
	defer m.wg.Done()

	for {
		select {
		case j := <-m.jobs:
			j.result <- m.execute(j)
		case <-m.done:
			return
		}
	}
}

func (m *TransactionManager) execute(j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("txmanager: panic in queued function: %v", r)
		}
	}()

	return j.fn(context.WithValue(j.ctx, txKey{}, true))
}
