// Package fragments loads the shared navbar and footer markup into the page.
// Fetches run on their own goroutines; what they fetched is applied to the
// document by a continuation posted back to the event loop.
package fragments

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/storefront/internal/client/dom"
	"github.com/dmitrijs2005/storefront/internal/client/eventloop"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Fragment binds a fragment name to the element it fills.
type Fragment struct {
	ElementID string
	Name      string
}

// Shared are the fragments every page loads.
var Shared = []Fragment{
	{ElementID: "navbar", Name: "navbar.html"},
	{ElementID: "footer", Name: "footer.html"},
}

type poster interface {
	Post(t eventloop.Task) bool
}

type Loader struct {
	src    Source
	doc    *dom.Document
	loop   poster
	render func(ctx context.Context)
	log    logging.Logger
}

// NewLoader wires a loader. render runs on the loop after each fragment is
// injected, since the fragment may contain elements the page renders into.
func NewLoader(src Source, doc *dom.Document, loop poster, render func(ctx context.Context), log logging.Logger) *Loader {
	return &Loader{src: src, doc: doc, loop: loop, render: render, log: log}
}

// Load fetches one fragment and posts its injection to the loop. It returns
// once the continuation is queued, not when it has run.
func (l *Loader) Load(ctx context.Context, f Fragment) error {
	b, err := l.src.Fetch(ctx, f.Name)
	if err != nil {
		l.log.Warn(ctx, "fragment not loaded", "fragment", f.Name, "error", err)
		return err
	}

	markup := string(b)
	if !l.loop.Post(func(ctx context.Context) { l.inject(ctx, f, markup) }) {
		return eventloop.ErrStopped
	}
	return nil
}

// LoadAll fetches fragments concurrently and returns every failure joined.
func (l *Loader) LoadAll(ctx context.Context, frags ...Fragment) error {
	errs := make([]error, len(frags))
	var g errgroup.Group
	for i, f := range frags {
		g.Go(func() error {
			errs[i] = l.Load(ctx, f)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// Start runs LoadAll in the background and returns a channel closed when it
// is done.
func (l *Loader) Start(ctx context.Context, frags ...Fragment) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = l.LoadAll(ctx, frags...)
	}()
	return done
}

func (l *Loader) inject(ctx context.Context, f Fragment, markup string) {
	el := l.doc.GetElementByID(f.ElementID)
	if el == nil {
		l.log.Warn(ctx, "fragment target missing", "fragment", f.Name, "element", f.ElementID)
		return
	}
	el.SetHTML(markup)
	l.log.Debug(ctx, "fragment loaded", "fragment", f.Name, "bytes", len(markup))
	if l.render != nil {
		l.render(ctx)
	}
}
