package cfg

// Key is a named value, the unit a Section and a table are built from. The
// name is sanitized at construction time and is never empty.
type Key struct {
	name string

	// Value is the key's value.
	Value Value
}

// NewKey returns a key with the given name and value. The name is run
// through SanitizeName with an underscore replacement, so the stored name
// may differ from the argument.
func NewKey(name string, value Value) Key {
	return Key{name: SanitizeName(name, '_'), Value: value}
}

// Name returns the key's name.
func (k Key) Name() string {
	return k.name
}

// Rename changes the key's name. The given name may be modified to be valid,
// see SanitizeName.
func (k *Key) Rename(name string) {
	k.name = SanitizeName(name, '_')
}

// IsValid reports whether the key's name passes IsValidName.
func (k Key) IsValid() bool {
	return IsValidName(k.name)
}
