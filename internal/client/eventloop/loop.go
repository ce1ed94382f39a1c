// Package eventloop runs every page handler on a single goroutine, one at a
// time, the way a browser tab dispatches events.
package eventloop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/logging"
)

// ErrStopped is returned when work is posted to a loop that is no longer running.
var ErrStopped = errors.New("event loop stopped")

// Task is a unit of work run on the loop goroutine.
type Task func(ctx context.Context)

type Loop struct {
	mu      sync.Mutex
	queue   []Task
	stopped bool

	wake chan struct{}
	done chan struct{}
	log  logging.Logger
}

func New(log logging.Logger) *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		log:  log,
	}
}

// Post enqueues t without blocking. It is safe to call from any goroutine,
// including from a running task. It reports false once the loop has stopped.
func (l *Loop) Post(t Task) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, t)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Do posts t and waits until it has run.
func (l *Loop) Do(ctx context.Context, t Task) error {
	finished := make(chan struct{})
	if !l.Post(func(ctx context.Context) {
		defer close(finished)
		t(ctx)
	}) {
		return ErrStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes queued tasks in order until ctx is canceled. Tasks still
// queued at that point are discarded.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			for {
				t, ok := l.next()
				if !ok {
					break
				}
				l.run(ctx, t)
				if ctx.Err() != nil {
					return ctx.Err()
				}
			}
		}
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

func (l *Loop) next() (Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	t := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return t, true
}

func (l *Loop) run(ctx context.Context, t Task) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error(ctx, "task panicked", "error", fmt.Sprint(r))
		}
	}()
	t(ctx)
}

func (l *Loop) stop() {
	l.mu.Lock()
	l.stopped = true
	l.queue = nil
	l.mu.Unlock()
	close(l.done)
}
