package script

import "fmt"

// derived is a lazily rebuilt value with an explicit {clean, dirty} tag.
// Mutating the source marks it dirty; the next read rebuilds exactly
// once. The contract is pull-based: nothing fires on invalidation.
type derived[T any] struct {
	value T
	clean bool
	build func() (T, error)
}

// setBuilder installs the rebuild function and marks the value dirty.
func (d *derived[T]) setBuilder(build func() (T, error)) {
	d.build = build
	d.clean = false
}

// invalidate marks the value dirty. The cached value is kept until the
// next get replaces it.
func (d *derived[T]) invalidate() { d.clean = false }

// isClean reports the tag state.
func (d *derived[T]) isClean() bool { return d.clean }

// store fills the value directly and marks it clean.
func (d *derived[T]) store(v T) {
	d.value = v
	d.clean = true
}

// get returns the value, rebuilding first when dirty. A rebuild failure
// leaves the value dirty so the next read retries.
func (d *derived[T]) get() (T, error) {
	if d.clean {
		return d.value, nil
	}
	if d.build == nil {
		var zero T
		return zero, fmt.Errorf("derived value read before a builder was installed")
	}
	v, err := d.build()
	if err != nil {
		var zero T
		return zero, err
	}
	d.value = v
	d.clean = true
	return v, nil
}
