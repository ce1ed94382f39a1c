// Package cli provides the storefront command-line shell.
//
// It wires configuration, the local store, the session/cart/user services and
// an in-memory page, then lets the user drive that page from an interactive
// REPL. Every REPL command is translated into the DOM event a shopper would
// produce (a click on a button, a form submit) and dispatched on the page's
// event loop, so the shell exercises exactly the code a page would.
//
// Besides the shell the command tree offers a few maintenance commands:
// users, carts, render, export and import.
//
// The REPL is started via App.Shell(ctx), which blocks until the user exits.
// See NewRootCommand, App and runREPL for details.
package cli
