// Package dom is a small in-memory document: the element tree the storefront
// reads its triggers from and renders its state into. It models only what
// the storefront touches (ids, classes, attributes, text, markup, display
// style and the parent chain used for event delegation).
package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Element is a node of the document tree.
type Element struct {
	ID      string
	Tag     string
	Text    string // textContent
	HTML    string // innerHTML
	Display string // style.display

	classes  []string
	attrs    map[string]string
	parent   *Element
	children []*Element
	doc      *Document
}

// Parent returns the enclosing element, nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the direct children in document order.
func (e *Element) Children() []*Element { return e.children }

// Append attaches child as the last child of e and returns child.
func (e *Element) Append(child *Element) *Element {
	if child.parent != nil {
		child.parent.detach(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	if e.doc != nil {
		e.doc.adopt(child)
	}
	return child
}

// ReplaceChildren drops the current children and attaches the given ones.
func (e *Element) ReplaceChildren(children ...*Element) {
	for _, c := range e.children {
		c.parent = nil
		if e.doc != nil {
			e.doc.forget(c)
		}
	}
	e.children = nil
	for _, c := range children {
		e.Append(c)
	}
}

func (e *Element) detach(child *Element) {
	e.children = slices.DeleteFunc(e.children, func(c *Element) bool { return c == child })
	child.parent = nil
}

// SetText sets textContent, dropping all children.
func (e *Element) SetText(s string) {
	e.ReplaceChildren()
	e.Text = s
	e.HTML = html.EscapeString(s)
}

// SetHTML sets innerHTML. The markup is parsed and its elements replace the
// current children, so ids and classes inside it become reachable.
func (e *Element) SetHTML(s string) {
	children, text := e.parseFragment(s)
	e.ReplaceChildren(children...)
	e.HTML = s
	e.Text = text
}

func (e *Element) HasClass(c string) bool {
	return slices.Contains(e.classes, c)
}

func (e *Element) AddClass(c string) {
	if !e.HasClass(c) {
		e.classes = append(e.classes, c)
	}
}

func (e *Element) RemoveClass(c string) {
	e.classes = slices.DeleteFunc(e.classes, func(x string) bool { return x == c })
}

// ToggleClass flips c and reports whether it is now present.
func (e *Element) ToggleClass(c string) bool {
	if e.HasClass(c) {
		e.RemoveClass(c)
		return false
	}
	e.AddClass(c)
	return true
}

// ReplaceClass swaps old for repl when old is present.
func (e *Element) ReplaceClass(old, repl string) {
	if e.HasClass(old) {
		e.RemoveClass(old)
		e.AddClass(repl)
	}
}

// ClassName is the space-separated class list.
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// Data returns the data-<name> attribute, "" when absent.
func (e *Element) Data(name string) string {
	return e.attrs["data-"+name]
}

// SetData sets the data-<name> attribute.
func (e *Element) SetData(name, value string) {
	e.SetAttr("data-"+name, value)
}

// Closest walks from e up through its ancestors and returns the first
// element m accepts, or nil.
func (e *Element) Closest(m Matcher) *Element {
	for cur := e; cur != nil; cur = cur.parent {
		if m(cur) {
			return cur
		}
	}
	return nil
}
