package fibre

const (
	defaultInitialCapacity = 16
	defaultGrowthStep      = 16
)

// Resetter is the contract for pooled values. Reset must return the value to
// a clean, reusable state.
type Resetter interface {
	Reset()
}

// PoolConfig controls pool sizing. Zero values select the defaults.
type PoolConfig struct {
	// InitialCapacity is the number of instances created up front.
	InitialCapacity int `yaml:"initial_capacity"`
	// GrowthStep is the number of instances created whenever the pool runs dry.
	GrowthStep int `yaml:"growth_step"`
}

func (c PoolConfig) withDefaults() PoolConfig {
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = defaultInitialCapacity
	}
	if c.GrowthStep <= 0 {
		c.GrowthStep = defaultGrowthStep
	}
	return c
}

// Pool is a grow-only free list of reusable instances. After warmup, Take and
// Return are zero-alloc. A Pool never shrinks.
//
// Pool is not safe for concurrent use.
type Pool[T Resetter] struct {
	factory    func() T
	free       []T
	growthStep int
	size       int

	// OnGrow, if set, is called after the pool creates new instances.
	OnGrow func(added, size int)
}

// NewPool creates a pool that builds instances with factory and fills it to
// the configured initial capacity.
func NewPool[T Resetter](factory func() T, cfg PoolConfig) *Pool[T] {
	cfg = cfg.withDefaults()
	p := &Pool[T]{
		factory:    factory,
		free:       make([]T, 0, cfg.InitialCapacity),
		growthStep: cfg.GrowthStep,
	}
	p.grow(cfg.InitialCapacity)
	return p
}

// Take pops a free instance, growing the pool by the growth step first when
// none are left.
func (p *Pool[T]) Take() T {
	if len(p.free) == 0 {
		p.grow(p.growthStep)
	}
	last := len(p.free) - 1
	v := p.free[last]
	var zero T
	p.free[last] = zero
	p.free = p.free[:last]
	return v
}

// Return resets v and pushes it back onto the free list.
func (p *Pool[T]) Return(v T) {
	v.Reset()
	p.free = append(p.free, v)
}

// Available returns the number of instances ready to be taken.
func (p *Pool[T]) Available() int {
	return len(p.free)
}

// Size returns the total number of instances the pool has created.
func (p *Pool[T]) Size() int {
	return p.size
}

func (p *Pool[T]) grow(n int) {
	for i := 0; i < n; i++ {
		v := p.factory()
		v.Reset()
		p.free = append(p.free, v)
	}
	p.size += n
	if p.OnGrow != nil {
		p.OnGrow(n, p.size)
	}
}
