package ini

// Entry is a single key = value line within a section.
type Entry struct {
	Key   string
	Value string
}

// Section is a named, ordered sequence of entries. Duplicate keys are kept.
type Section struct {
	Name    string
	Entries []Entry
}

// Document is an ordered collection of sections. Section order follows first
// appearance in the input; reopening a section appends to the existing one.
type Document struct {
	sections []*Section
	byName   map[string]*Section
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{byName: make(map[string]*Section)}
}

// Section returns the named section, or nil if the document has none.
func (d *Document) Section(name string) *Section {
	return d.byName[name]
}

// Sections returns all sections in first-appearance order.
func (d *Document) Sections() []*Section {
	return d.sections
}

// open returns the named section, creating it on first sight.
func (d *Document) open(name string) *Section {
	if s, ok := d.byName[name]; ok {
		return s
	}
	s := &Section{Name: name}
	d.sections = append(d.sections, s)
	d.byName[name] = s
	return s
}
