package editor

// ProductForm is the parent form a session edits: a generic field map with
// the setter the variant bridge publishes through. Only fields written via
// SetField are considered changed; the rest are display state.
type ProductForm struct {
	fields map[string]any
	dirty  map[string]bool
}

func NewProductForm(initial map[string]any) *ProductForm {
	fields := make(map[string]any, len(initial))
	for k, v := range initial {
		fields[k] = v
	}
	return &ProductForm{
		fields: fields,
		dirty:  map[string]bool{},
	}
}

// SetField writes a field and marks it changed. Implements variant.FieldSetter.
func (f *ProductForm) SetField(name string, value any) {
	f.fields[name] = value
	f.dirty[name] = true
}

// Field returns the current value of a field.
func (f *ProductForm) Field(name string) (any, bool) {
	v, ok := f.fields[name]
	return v, ok
}

// DirtyField returns a field's value only when it has been changed since the
// form was built.
func (f *ProductForm) DirtyField(name string) (any, bool) {
	if !f.dirty[name] {
		return nil, false
	}
	return f.fields[name], true
}

// Values returns a copy of all current fields.
func (f *ProductForm) Values() map[string]any {
	out := make(map[string]any, len(f.fields))
	for k, v := range f.fields {
		out[k] = v
	}
	return out
}
