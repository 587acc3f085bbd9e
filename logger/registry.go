package logger

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/threadlog/config"
	"github.com/philipp01105/threadlog/core"
)

// ErrAlreadyRegistered is returned by RegisterFromConfig when the
// goroutine already owns a Logger
var ErrAlreadyRegistered = errors.New("logger: thread already registered")

// Registry maps thread ids to Loggers. Each thread registers at most one
// Logger; lookups from unregistered threads fall back to the first
// Logger ever registered.
type Registry struct {
	mu      sync.RWMutex
	builder *Builder
	index   map[core.ThreadID]Logger
	order   []Logger
	closed  bool
}

// NewRegistry creates a Registry whose Loggers are built by b. A nil
// Builder means NewBuilder().
func NewRegistry(b *Builder) *Registry {
	if b == nil {
		b = NewBuilder()
	}
	return &Registry{
		builder: b,
		index:   make(map[core.ThreadID]Logger),
	}
}

// Contains reports whether id has a Logger
func (r *Registry) Contains(id core.ThreadID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[id]
	return ok
}

// Len returns the number of registered Loggers
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Insert stores l under id unless id is already present, l is invalid or
// the registry is closed. The registry keeps its own reference to l and
// records id as its thread.
func (r *Registry) Insert(id core.ThreadID, l Logger) bool {
	if !l.Valid() {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	if _, ok := r.index[id]; ok {
		return false
	}
	held := l.Retain()
	if !held.Valid() {
		return false
	}
	s := held.state()
	s.mu.Lock()
	s.thread = id
	s.mu.Unlock()

	r.index[id] = held
	r.order = append(r.order, held)
	return true
}

// Lookup returns the Logger registered for id, else the first Logger
// ever registered, else the invalid Logger.
func (r *Registry) Lookup(id core.ThreadID) Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.index[id]; ok {
		return l.borrow()
	}
	if len(r.order) > 0 {
		return r.order[0].borrow()
	}
	return Logger{}
}

// Current returns the calling goroutine's Logger (see Lookup)
func (r *Registry) Current() Logger {
	return r.Lookup(core.CurrentThread())
}

// Register builds a Logger for the calling goroutine. If the goroutine
// already has one, the new Logger is discarded and the invalid Logger
// returned; the existing entry is untouched.
func (r *Registry) Register(displayName string) Logger {
	return r.RegisterThread(core.CurrentThread(), displayName)
}

// RegisterThread is Register for an explicit thread id. The returned
// handle borrows the registry's reference and stays usable until Close.
func (r *Registry) RegisterThread(id core.ThreadID, displayName string) Logger {
	l := r.builder.Build(displayName)
	ok := r.Insert(id, l)
	l.Release()
	if !ok {
		return Logger{}
	}
	return l.borrow()
}

// RegisterFromConfig registers the calling goroutine under
// cfg.DisplayName and initializes the new Logger from cfg.
func (r *Registry) RegisterFromConfig(cfg *config.Config) (Logger, error) {
	l := r.Register(cfg.DisplayName)
	if !l.Valid() {
		return l, ErrAlreadyRegistered
	}
	return l, l.InitializeFromConfig(cfg)
}

// Close closes every registered Logger's file and drops the registry's
// references. Later registrations fail and lookups return the invalid
// Logger. Calling Close more than once is a no-op.
func (r *Registry) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	loggers := r.order
	r.index = nil
	r.order = nil
	r.mu.Unlock()

	var err error
	for _, l := range loggers {
		err = multierr.Append(err, l.state().shutdown())
		l.Release()
	}
	return err
}
