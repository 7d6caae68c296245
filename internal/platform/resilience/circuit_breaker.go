package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// CircuitBreaker stops calling a dependency after FailureThreshold
// consecutive counted failures. After OpenTimeout it lets HalfOpenMaxReq
// probes through; they must all succeed to close it again. A disabled
// breaker runs every call.
type CircuitBreaker struct {
	mu  sync.Mutex
	cfg CircuitBreakerConfig

	// counts reports whether an error is the dependency's fault. Other
	// errors pass through without touching the state.
	counts        func(error) bool
	onStateChange func(from, to CircuitState)

	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int
	successes int
	now       func() time.Time
}

type BreakerOption func(*CircuitBreaker)

// WithFailurePredicate limits which errors count as failures. By default
// every non-nil error counts.
func WithFailurePredicate(fn func(error) bool) BreakerOption {
	return func(b *CircuitBreaker) {
		if fn != nil {
			b.counts = fn
		}
	}
}

func WithStateChangeHook(fn func(from, to CircuitState)) BreakerOption {
	return func(b *CircuitBreaker) {
		b.onStateChange = fn
	}
}

func NewCircuitBreaker(cfg CircuitBreakerConfig, opts ...BreakerOption) *CircuitBreaker {
	b := &CircuitBreaker{
		cfg:    cfg.normalize(),
		counts: func(err error) bool { return err != nil },
		state:  CircuitClosed,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Execute runs fn unless the circuit is open, in which case it returns
// ErrCircuitOpen without calling fn. The outcome of fn is recorded.
func (b *CircuitBreaker) Execute(fn func() error) error {
	if !b.cfg.Enabled {
		return fn()
	}
	if err := b.acquire(); err != nil {
		return err
	}

	err := fn()
	b.release(err != nil && b.counts(err))
	return err
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) acquire() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.transition(CircuitHalfOpen)
	}
	if b.state == CircuitHalfOpen {
		if b.probes >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.probes++
	}
	return nil
}

func (b *CircuitBreaker) release(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitClosed:
		if !failed {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(CircuitOpen)
		}
	case CircuitHalfOpen:
		if failed {
			b.transition(CircuitOpen)
			return
		}
		b.successes++
		if b.successes >= b.cfg.HalfOpenMaxReq {
			b.transition(CircuitClosed)
		}
	case CircuitOpen:
		// A call admitted before the circuit opened finished late.
		if failed {
			b.openedAt = b.now()
		}
	}
}

// transition must be called with mu held.
func (b *CircuitBreaker) transition(to CircuitState) {
	from := b.state
	b.state = to
	b.failures = 0
	b.probes = 0
	b.successes = 0
	if to == CircuitOpen {
		b.openedAt = b.now()
	} else {
		b.openedAt = time.Time{}
	}
	if b.onStateChange != nil && from != to {
		b.onStateChange(from, to)
	}
}
