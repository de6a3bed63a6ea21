package variant

// FieldSetter is the parent form's generic setter. The bridge publishes the
// reshaped variant list under the "variants" key through it.
type FieldSetter interface {
	SetField(name string, value any)
}

// FormKey is the form field the bridge publishes under.
const FormKey = "variants"

// Bridge republishes the store's contents to the parent form whenever they
// actually change. Publishing only after the one-time seed, and only when the
// list structurally differs from the last published snapshot, is what keeps a
// publish-triggered re-render from feeding back into the store as an endless
// update cycle.
type Bridge struct {
	store *Store
	form  FieldSetter
	prev  []Variant
}

func NewBridge(store *Store, form FieldSetter) *Bridge {
	return &Bridge{store: store, form: form}
}

// Prime records the current list as already published. Called right after
// seeding so the initial server data never triggers a write back into the
// form it just came from.
func (b *Bridge) Prime() {
	b.prev = b.store.List()
}

// Sync publishes the current list to the form if the store has seeded and the
// list differs from the last published snapshot. Returns whether a publish
// happened.
func (b *Bridge) Sync() bool {
	if !b.store.Seeded() {
		return false
	}

	current := b.store.List()
	if VariantsEqual(current, b.prev) {
		return false
	}

	b.form.SetField(FormKey, MapToForm(current))

	// List() hands back deep copies, so this snapshot is structural,
	// not a shared reference.
	b.prev = current
	return true
}
