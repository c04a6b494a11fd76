package ui

// FocusManager rotates keyboard focus across the website form's fields
// (URL, title, CSS, JS, and the two toggles). Order is the tab order;
// OnChange, when set, fires on every transition.
type FocusManager struct {
	Current  string
	Order    []string
	OnChange func(from, to string)
}

// Next moves focus forward one field, wrapping at the end, and returns
// the newly focused field ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus back one field, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := 0
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	from := f.Current
	idx = (idx + delta + len(f.Order)) % len(f.Order)
	f.Current = f.Order[idx]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus jumps straight to the given field. Returns false when the
// ID is not part of the rotation.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			from := f.Current
			f.Current = id
			if f.OnChange != nil && from != id {
				f.OnChange(from, id)
			}
			return true
		}
	}
	return false
}
