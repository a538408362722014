package overlay

// Overlay maps span indices to explicit interpretations. Keys are only
// meaningful against the span list they were set for; Remap carries them
// across edits.
type Overlay map[int]Interpretation

func New() Overlay {
	return make(Overlay)
}

// Get returns the interpretation of span i, or Default.
func (o Overlay) Get(i int) Interpretation {
	if in, ok := o[i]; ok && in != nil {
		return in
	}
	return Default
}

func (o Overlay) Set(i int, in Interpretation) {
	if in == nil {
		delete(o, i)
		return
	}
	o[i] = in
}

func (o Overlay) Clear(i int) {
	delete(o, i)
}

func (o Overlay) ClearAll() {
	clear(o)
}
