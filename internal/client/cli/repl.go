package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Products(ctx context.Context) error
	Add(ctx context.Context, productID string) error
	Cart(ctx context.Context) error
	Remove(ctx context.Context, index string) error
	CloseCart(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Nav(ctx context.Context) error
	Checkout(ctx context.Context) error
	Show(ctx context.Context) error
}

const helpText = "Available commands: products, add <product-id>, cart, remove <index>, close-cart, " +
	"login, register, logout, nav, checkout, show, exit"

// runREPL starts a simple read–eval–print loop for the storefront shell.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "products":
			cmdErr = a.Products(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <product-id>")
				continue
			}
			cmdErr = a.Add(ctx, args[0])

		case "cart":
			cmdErr = a.Cart(ctx)

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <index>")
				continue
			}
			cmdErr = a.Remove(ctx, args[0])

		case "close-cart":
			cmdErr = a.CloseCart(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "nav":
			cmdErr = a.Nav(ctx)

		case "checkout":
			cmdErr = a.Checkout(ctx)

		case "show":
			cmdErr = a.Show(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// Shell boots the page and runs the REPL on it until the user exits or ctx
// is canceled.
func (a *App) Shell(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.BootAndWait(ctx); err != nil {
		return err
	}
	printlnFn("Welcome to the storefront shell (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
	return nil
}
