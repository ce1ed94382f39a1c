package dom

// EventType names a DOM event.
type EventType string

const (
	Click  EventType = "click"
	Submit EventType = "submit"
)

// Event is a dispatched DOM event. Fields carries the values of a submitted
// form keyed by input name.
type Event struct {
	Type   EventType
	Target *Element
	Fields map[string]string

	defaultPrevented bool
}

func (e *Event) PreventDefault() { e.defaultPrevented = true }

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Field returns a submitted form value, "" when missing.
func (e *Event) Field(name string) string {
	return e.Fields[name]
}

// Matcher is a selector: it reports whether an element matches.
type Matcher func(*Element) bool

// ByID matches "#id".
func ByID(id string) Matcher {
	return func(e *Element) bool { return e.ID == id }
}

// ByClass matches ".class".
func ByClass(class string) Matcher {
	return func(e *Element) bool { return e.HasClass(class) }
}

// ByTag matches a tag name.
func ByTag(tag string) Matcher {
	return func(e *Element) bool { return e.Tag == tag }
}

// Any matches when any of ms does.
func Any(ms ...Matcher) Matcher {
	return func(e *Element) bool {
		for _, m := range ms {
			if m(e) {
				return true
			}
		}
		return false
	}
}

// ChildOf matches "parent > child".
func ChildOf(parent, child Matcher) Matcher {
	return func(e *Element) bool {
		return child(e) && e.parent != nil && parent(e.parent)
	}
}
