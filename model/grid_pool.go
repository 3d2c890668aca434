package model

import "sync"

// GridPool recycles grid buffers across resizes
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a cleared grid of the given size. The size must already be validated.
func (p *GridPool) Get(size int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(size)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}
