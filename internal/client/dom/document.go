package dom

// Document owns the element tree and indexes it by id.
type Document struct {
	root *Element
	byID map[string]*Element

	// ViewportWidth is window.innerWidth in CSS pixels.
	ViewportWidth int
	// Location is the URL the page last navigated to; "" means it stayed put.
	Location string
}

// NewDocument returns a document with an empty <body> root.
func NewDocument() *Document {
	d := &Document{byID: make(map[string]*Element), ViewportWidth: 1280}
	d.root = &Element{Tag: "body", doc: d}
	return d
}

// Body is the root element.
func (d *Document) Body() *Element { return d.root }

// Create returns a detached element owned by d. It becomes reachable by id
// once appended under the body.
func (d *Document) Create(tag, id string, classes ...string) *Element {
	e := &Element{Tag: tag, ID: id, doc: d}
	for _, c := range classes {
		e.AddClass(c)
	}
	return e
}

// GetElementByID returns the attached element with id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	return d.byID[id]
}

// QueryAll returns every attached element m accepts, in document order.
func (d *Document) QueryAll(m Matcher) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(e *Element) {
		if m(e) {
			out = append(out, e)
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// Navigate records a page navigation.
func (d *Document) Navigate(url string) {
	d.Location = url
}

func (d *Document) attached(e *Element) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if cur == d.root {
			return true
		}
	}
	return false
}

func (d *Document) adopt(e *Element) {
	if !d.attached(e) {
		return
	}
	var walk func(*Element)
	walk = func(x *Element) {
		x.doc = d
		if x.ID != "" {
			d.byID[x.ID] = x
		}
		for _, c := range x.children {
			walk(c)
		}
	}
	walk(e)
}

func (d *Document) forget(e *Element) {
	var walk func(*Element)
	walk = func(x *Element) {
		if x.ID != "" && d.byID[x.ID] == x {
			delete(d.byID, x.ID)
		}
		for _, c := range x.children {
			walk(c)
		}
	}
	walk(e)
}
