package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/storefront/internal/client/catalog"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/controller"
	"github.com/dmitrijs2005/storefront/internal/client/database"
	"github.com/dmitrijs2005/storefront/internal/client/dom"
	"github.com/dmitrijs2005/storefront/internal/client/eventloop"
	"github.com/dmitrijs2005/storefront/internal/client/fragments"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/client/ui"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// App owns the local store, the services on top of it and, once booted,
// the page those services render into.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	store   *storage.Adapter
	users   *services.UserDirectory
	session *services.SessionManager
	cart    *services.CartStore
	catalog *catalog.Catalog
	money   ui.Money

	doc    *dom.Document
	sync   *ui.Synchronizer
	ctrl   *controller.Controller
	loop   *eventloop.Loop
	loader *fragments.Loader

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local store and loads the catalog. The page is not built
// until Boot.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	db, err := database.Open(ctx, c.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	cat, err := catalog.Load(c.CatalogPath)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := storage.New(kv.NewSQLiteRepository(db), log)
	session := services.NewSessionManager(store, log)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		store:   store,
		users:   services.NewUserDirectory(store, log),
		session: session,
		cart:    services.NewCartStore(store, session, log),
		catalog: cat,
		money:   ui.NewMoney(c.CurrencySymbol, c.Locale),
		loop:    eventloop.New(log),
		reader:  bufio.NewReader(in),
		out:     out,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Boot builds the page and brings it to life: listeners are wired, the event
// loop starts, the page renders once, and the shared fragments start
// loading. The returned channel is closed when every fragment has either
// been queued for injection or failed. The loop runs until ctx is canceled.
func (a *App) Boot(ctx context.Context) (<-chan struct{}, error) {
	doc := dom.NewDocument()
	doc.ViewportWidth = a.config.ViewportWidth
	if err := ui.Mount(ctx, doc, a.catalog.Products, a.money); err != nil {
		return nil, err
	}
	a.doc = doc

	a.sync = ui.NewSynchronizer(doc, a.session, a.cart, a.money, a.log)
	a.session.OnChange(a.sync.Render)
	a.cart.OnChange(a.sync.RenderCart)

	a.ctrl = controller.New(controller.Deps{
		Doc:     doc,
		Users:   a.users,
		Session: a.session,
		Cart:    a.cart,
		UI:      a.sync,
		Prompt:  &termPrompter{reader: a.reader, out: a.out},
		Log:     a.log,
	})

	go func() { _ = a.loop.Run(ctx) }()
	if err := a.loop.Do(ctx, a.sync.Render); err != nil {
		return nil, err
	}

	a.loader = fragments.NewLoader(a.fragmentSource(), doc, a.loop, a.sync.Render, a.log)
	return a.loader.Start(ctx, fragments.Shared...), nil
}

func (a *App) fragmentSource() fragments.Source {
	var src fragments.Source
	switch {
	case a.config.FragmentsURL != "":
		src = fragments.HTTPSource{BaseURL: a.config.FragmentsURL}
	case a.config.FragmentsDir != "":
		src = fragments.DirSource(a.config.FragmentsDir)
	default:
		src = fragments.Builtin()
	}
	return fragments.WithTimeout(src, a.config.FetchTimeout)
}

// BootAndWait boots the page and waits for the fragments to settle, then
// lets the loop drain so their injection has run.
func (a *App) BootAndWait(ctx context.Context) error {
	loaded, err := a.Boot(ctx)
	if err != nil {
		return err
	}
	select {
	case <-loaded:
	case <-ctx.Done():
		return ctx.Err()
	}
	return a.loop.Do(ctx, func(context.Context) {})
}
