package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/filex"
)

// ListUsers prints every registered user. Passwords are never shown.
func (a *App) ListUsers(ctx context.Context) error {
	users := a.users.List(ctx)
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No registered users.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\n", u.Name, u.Email)
	}
	return tw.Flush()
}

// ListCarts prints every stored cart with its item count and total.
func (a *App) ListCarts(ctx context.Context) error {
	keys := a.store.Keys(ctx, storage.CartKeyPrefix)
	if len(keys) == 0 {
		fmt.Fprintln(a.out, "No carts.")
		return nil
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMAIL\tITEMS\tTOTAL")
	for _, k := range keys {
		items := storage.ReadList[models.LineItem](ctx, a.store, k)
		fmt.Fprintf(tw, "%s\t%d\t%s\n", strings.TrimPrefix(k, storage.CartKeyPrefix), len(items), a.money.Format(models.CartTotal(items)))
	}
	return tw.Flush()
}

// Render boots the page, waits for the fragments and prints the markup of
// everything the synchronizer owns.
func (a *App) Render(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.BootAndWait(ctx); err != nil {
		return err
	}
	return a.loop.Do(ctx, func(context.Context) {
		for _, id := range []string{"login-icon", "cart-count", "cart-items", "cart-total"} {
			el := a.doc.GetElementByID(id)
			if el == nil {
				fmt.Fprintf(a.out, "#%s: (missing)\n", id)
				continue
			}
			fmt.Fprintf(a.out, "#%s:\n%s\n", id, el.HTML)
		}
	})
}

// Export writes the whole local store to path as a JSON object.
func (a *App) Export(ctx context.Context, path string) error {
	pairs, err := a.store.Snapshot(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if _, err := filex.EnsureParentDir(path); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(a.out, "Exported %d key(s) to %s\n", len(pairs), path)
	return nil
}

// Import replaces the whole local store with the JSON object at path.
func (a *App) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}
	var pairs map[string]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("failed to parse import %s: %w", path, err)
	}
	if err := a.store.Restore(ctx, pairs); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Imported %d key(s) from %s\n", len(pairs), path)
	return nil
}
