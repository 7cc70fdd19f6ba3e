package render

// Handle is an opaque, backend-owned reference to a GPU resource (buffer,
// texture, pipeline state, sampler, render target view, ...). The core
// never dereferences the concrete type behind a Handle; only the Backend
// that created it knows how to resolve one.
type Handle struct {
	index uint32
	valid bool
}

// InvalidHandle is the zero value of Handle. It is never returned by a
// successful creation call.
var InvalidHandle = Handle{}

// NewHandle constructs a valid Handle wrapping index. Backend
// implementations use this to hand out handles backed by their own
// resource tables.
func NewHandle(index uint32) Handle {
	return Handle{index: index, valid: true}
}

// Valid reports whether h refers to a live resource.
func (h Handle) Valid() bool { return h.valid }

// Index returns the backend-assigned slot for h. Only meaningful to the
// Backend that issued h.
func (h Handle) Index() uint32 { return h.index }
