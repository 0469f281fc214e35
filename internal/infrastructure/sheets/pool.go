package sheets

import (
	"context"
	"sync"
)

// Pool administra un conjunto acotado de handles al almacén remoto, uno por
// worker en vuelo. La librería cliente no es segura para compartir entre
// workers, así que cada handle se crea perezosamente al primer uso, se entrega
// en exclusiva y se devuelve al pool al terminar; nunca hay un singleton
// ambiente de proceso.
type Pool struct {
	factory func(ctx context.Context) (Store, error)
	idle    chan Store

	mu      sync.Mutex
	created int
	size    int
}

// NewPool construye el pool. size es la cantidad máxima de handles vivos;
// factory crea uno nuevo cuando hace falta.
func NewPool(size int, factory func(ctx context.Context) (Store, error)) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{
		factory: factory,
		idle:    make(chan Store, size),
		size:    size,
	}
}

// Acquire entrega un handle en exclusiva: reutiliza uno ocioso, crea uno nuevo
// si aún hay cupo, o espera a que otro worker devuelva el suyo.
func (p *Pool) Acquire(ctx context.Context) (Store, error) {
	select {
	case s := <-p.idle:
		return s, nil
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		s, err := p.factory(ctx)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, err
		}
		return s, nil
	}
	p.mu.Unlock()

	select {
	case s := <-p.idle:
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release devuelve el handle al pool para el próximo worker.
func (p *Pool) Release(s Store) {
	if s == nil {
		return
	}
	select {
	case p.idle <- s:
	default:
		// pool lleno: descartar; el contador de creados se corrige
		p.mu.Lock()
		p.created--
		p.mu.Unlock()
	}
}

// WithStore toma un handle, ejecuta fn y lo devuelve al pool.
func (p *Pool) WithStore(ctx context.Context, fn func(Store) error) error {
	s, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.Release(s)
	return fn(s)
}
