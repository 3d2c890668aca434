package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/elloun/gameoflife/rules"
)

// Unbounded is the generation budget meaning "run until stable or stopped"
const Unbounded = -1

// Outcome is the result of a single generation step
type Outcome int

const (
	// Continued means the grid changed and the new generation is now current
	Continued Outcome = iota
	// Stable means no cell changed; further stepping is pointless
	Stable
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// StepResult reports what a step did and the countdown left afterwards
type StepResult struct {
	Outcome              Outcome
	RemainingGenerations int
	// Exhausted is set once a non-negative budget has reached zero
	Exhausted bool
}

// Listener receives notifications raised by the simulator. Either field may be nil.
type Listener struct {
	// EnvironmentChanged fires when a cell is toggled
	EnvironmentChanged func()
	// GameEnded fires when a step finds the grid stable or the grid is cleared
	GameEnded func()
}

// Option configures a Simulator
type Option func(*Simulator)

// WithWorkers splits each step's rows across n goroutines. n <= 1 steps sequentially.
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		s.workers = max(1, n)
	}
}

// WithGridPool makes Resize recycle grid buffers through pool
func WithGridPool(pool *GridPool) Option {
	return func(s *Simulator) {
		s.pool = pool
	}
}

// WithListener registers the notification callbacks
func WithListener(l Listener) Option {
	return func(s *Simulator) {
		s.listener = l
	}
}

// Simulator owns a current grid and a scratch grid of the same size and
// advances the current one generation per Step call. It never schedules
// anything itself and is not safe for concurrent use.
type Simulator struct {
	cur  *Grid
	next *Grid

	remainingGenerations int
	running              bool
	generation           int

	workers  int
	pool     *GridPool
	listener Listener
}

// NewSimulator creates a simulator over an all-dead size×size grid
func NewSimulator(size int, opts ...Option) (*Simulator, error) {
	s := &Simulator{
		remainingGenerations: Unbounded,
		workers:              1,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := validateSize(size); err != nil {
		return nil, errors.Wrap(err, "[NewSimulator]")
	}
	s.cur, s.next = s.newGrid(size), s.newGrid(size)
	return s, nil
}

func (s *Simulator) newGrid(size int) *Grid {
	if s.pool != nil {
		return s.pool.Get(size)
	}
	return &Grid{size: size, cells: make([]bool, size*size)}
}

// Size returns the number of cells per edge
func (s *Simulator) Size() int {
	return s.cur.Size()
}

// Start sets the generation budget and marks the simulator as running.
// A negative budget means unbounded.
func (s *Simulator) Start(budget int) {
	s.remainingGenerations = budget
	s.running = true
}

// Stop clears the running intent. The grid is left alone.
func (s *Simulator) Stop() {
	s.running = false
}

// Running reports whether stepping is currently wanted
func (s *Simulator) Running() bool {
	return s.running
}

// RemainingGenerations returns the countdown, negative when unbounded
func (s *Simulator) RemainingGenerations() int {
	return s.remainingGenerations
}

// Generation returns the number of generations applied since the last resize or clear
func (s *Simulator) Generation() int {
	return s.generation
}

// Step computes the next generation. If nothing changes the result is Stable,
// the current grid and countdown are left as they were and GameEnded fires.
// Otherwise the new generation replaces the current one.
func (s *Simulator) Step() StepResult {
	unchanged := s.computeNext()

	size := s.cur.Size()
	if unchanged == size*size {
		s.running = false
		s.notify(s.listener.GameEnded)
		return s.result(Stable)
	}

	s.cur, s.next = s.next, s.cur
	s.generation++
	if s.remainingGenerations > 0 {
		s.remainingGenerations--
	}
	return s.result(Continued)
}

func (s *Simulator) result(outcome Outcome) StepResult {
	return StepResult{
		Outcome:              outcome,
		RemainingGenerations: s.remainingGenerations,
		Exhausted:            s.remainingGenerations == 0,
	}
}

// computeNext writes the next generation into the scratch grid and returns
// how many cells kept their state
func (s *Simulator) computeNext() int {
	size := s.cur.Size()
	if s.workers <= 1 || size < 2*s.workers {
		return s.computeRows(0, size)
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (size + s.workers - 1) / s.workers // Ceiling division
		unchanged     = make([]int, s.workers)
	)

	for i := range s.workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, size)
		)
		if startRow >= size {
			break
		}

		eg.Go(func() error {
			unchanged[i] = s.computeRows(startRow, endRow)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = eg.Wait()

	total := 0
	for _, n := range unchanged {
		total += n
	}
	return total
}

func (s *Simulator) computeRows(startRow, endRow int) (unchanged int) {
	cur, next := s.cur, s.next
	for row := startRow; row < endRow; row++ {
		for col := 0; col < cur.size; col++ {
			alive := cur.alive(row, col)
			nextAlive := rules.ApplyConwayRules(cur.CountNeighbors(row, col), alive)
			next.cells[row*next.size+col] = nextAlive
			if nextAlive == alive {
				unchanged++
			}
		}
	}
	return
}

// IsAlive returns the state of a cell in the current generation
func (s *Simulator) IsAlive(row, col int) (bool, error) {
	alive, err := s.cur.Get(row, col)
	if err != nil {
		return false, errors.Wrap(err, "[Simulator.IsAlive]")
	}
	return alive, nil
}

// SetCell sets a cell in the current generation
func (s *Simulator) SetCell(row, col int, alive bool) error {
	if err := s.cur.Set(row, col, alive); err != nil {
		return errors.Wrap(err, "[Simulator.SetCell]")
	}
	return nil
}

// Toggle flips a cell, returns its new state and fires EnvironmentChanged
func (s *Simulator) Toggle(row, col int) (bool, error) {
	alive, err := s.cur.Toggle(row, col)
	if err != nil {
		return false, errors.Wrap(err, "[Simulator.Toggle]")
	}
	s.notify(s.listener.EnvironmentChanged)
	return alive, nil
}

// Paint brings a dead cell to life and leaves a live one alone, as when
// dragging across the board
func (s *Simulator) Paint(row, col int) error {
	alive, err := s.cur.Get(row, col)
	if err != nil {
		return errors.Wrap(err, "[Simulator.Paint]")
	}
	if !alive {
		return s.cur.Set(row, col, true)
	}
	return nil
}

// Resize replaces both grids with cleared ones of the new size
func (s *Simulator) Resize(size int) error {
	if err := validateSize(size); err != nil {
		return errors.Wrap(err, "[Simulator.Resize]")
	}

	if s.pool != nil {
		s.pool.Put(s.cur)
		s.pool.Put(s.next)
		s.cur, s.next = s.pool.Get(size), s.pool.Get(size)
	} else {
		if err := s.cur.Resize(size); err != nil {
			return errors.Wrap(err, "[Simulator.Resize]")
		}
		if err := s.next.Resize(size); err != nil {
			return errors.Wrap(err, "[Simulator.Resize]")
		}
	}
	s.generation = 0
	return nil
}

// Clear kills every cell of the current generation and fires GameEnded
func (s *Simulator) Clear() {
	s.cur.Clear()
	s.generation = 0
	s.notify(s.listener.GameEnded)
}

// LivingCells returns the population of the current generation
func (s *Simulator) LivingCells() int {
	return s.cur.CountLivingCells()
}

// Hash returns a digest of the current generation
func (s *Simulator) Hash() string {
	return s.cur.Hash()
}

// EncodeSnapshot dumps the current generation as text
func (s *Simulator) EncodeSnapshot() string {
	return EncodeSnapshot(s.cur)
}

// DecodeSnapshot loads the current generation from text. On error the grid is unchanged.
func (s *Simulator) DecodeSnapshot(snapshot string) error {
	if err := DecodeSnapshot(snapshot, s.cur); err != nil {
		return errors.Wrap(err, "[Simulator.DecodeSnapshot]")
	}
	return nil
}

// Grid exposes the current generation for seeding helpers such as AddGlider
func (s *Simulator) Grid() *Grid {
	return s.cur
}

func (s *Simulator) notify(fn func()) {
	if fn != nil {
		fn()
	}
}
