package entity

// Mode is the table's form mode: either CreateMode or EditMode.
type Mode[K comparable] interface {
	editKey() (K, bool)
}

// CreateMode means submitting the form creates a new record.
type CreateMode[K comparable] struct{}

// EditMode means submitting the form replaces the record identified by Key.
type EditMode[K comparable] struct {
	Key K
}

func (CreateMode[K]) editKey() (K, bool) {
	var zero K
	return zero, false
}

func (m EditMode[K]) editKey() (K, bool) { return m.Key, true }

// Editing returns the key under edit, if any.
func Editing[K comparable](m Mode[K]) (K, bool) {
	if m == nil {
		var zero K
		return zero, false
	}
	return m.editKey()
}
