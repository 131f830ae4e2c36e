package snapshot

// Model types for one snapshot run. The model is built once, canonicalized,
// serialized, and discarded; nothing mutates it after construction except
// the canonicalization pass. Ownership is strictly hierarchical: the
// Snapshot owns the manifest, the manifest owns the device and cluster
// lists, each device owns its registers and dumps, and the trace branch
// owns its buffers and cross-reference tables.

// ListEntry is one ordered (key, value) pair from a flat key/value section,
// such as [device_list], [clusters], [core_trace_sources] or
// [source_buffers].
type ListEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Manifest is the typed view of the snapshot's top-level snapshot.ini.
type Manifest struct {
	Version       string      `yaml:"version"`
	Description   string      `yaml:"description,omitempty"`
	DeviceList    []ListEntry `yaml:"device_list"`
	Clusters      []ListEntry `yaml:"clusters,omitempty"`
	TraceMetadata string      `yaml:"trace_metadata,omitempty"`
}

// RegisterValue is one entry of a device file's [regs] section.
type RegisterValue struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"` // outer matching quote pair stripped
	ID    string `yaml:"id,omitempty"`
	Size  string `yaml:"size,omitempty"`

	// HasID and HasSize distinguish "absent" from "present but empty".
	HasID   bool `yaml:"-"`
	HasSize bool `yaml:"-"`

	// IDNumeric/IDValue hold the advisory numeric parse of ID, used only
	// for ordering.
	IDNumeric bool   `yaml:"-"`
	IDValue   uint64 `yaml:"-"`

	// Position is the zero-based declaration index, the final ordering
	// tie-break. Never semantically significant otherwise.
	Position int `yaml:"-"`
}

// MemoryDump is one dump-prefixed section of a device file.
type MemoryDump struct {
	Section string `yaml:"section"`
	File    string `yaml:"file"` // quote-stripped, forward-slash normalized
	Space   string `yaml:"space,omitempty"`
	Address string `yaml:"address"` // raw text as declared
	Length  string `yaml:"length,omitempty"`
	Offset  string `yaml:"offset,omitempty"`

	// AddressValue is the parsed Address, the dump ordering key.
	AddressValue uint64 `yaml:"-"`
}

// Device is the typed view of one device description file.
type Device struct {
	Name       string          `yaml:"name"`
	Class      string          `yaml:"class,omitempty"`
	Type       string          `yaml:"type,omitempty"`
	Location   string          `yaml:"location,omitempty"`
	SourcePath string          `yaml:"source"` // manifest-relative, normalized
	Registers  []RegisterValue `yaml:"registers,omitempty"`
	Dumps      []MemoryDump    `yaml:"dumps,omitempty"`
}

// TraceBuffer is one buffer described by the trace-metadata file.
type TraceBuffer struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Format string   `yaml:"format,omitempty"`
	Files  []string `yaml:"files"` // each quote-stripped and normalized
}

// TraceMetadata is the typed view of the optional trace-metadata file.
type TraceMetadata struct {
	BufferIDs        []string      `yaml:"buffer_ids"` // deduplicated, sorted
	Buffers          []TraceBuffer `yaml:"buffers"`
	CoreTraceSources []ListEntry   `yaml:"core_trace_sources,omitempty"`
	SourceBuffers    []ListEntry   `yaml:"source_buffers,omitempty"`
}

// Snapshot is the complete model for one run.
type Snapshot struct {
	Dir      string         `yaml:"dir"`
	Manifest Manifest       `yaml:"manifest"`
	Devices  []Device       `yaml:"devices"`
	Trace    *TraceMetadata `yaml:"trace,omitempty"`
}
