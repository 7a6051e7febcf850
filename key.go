package state

import "reflect"

// Key is the immutable schema token for a typed slot: a stable identifier,
// a display name, the element's runtime type, and the default element
// returned when a state holds no explicit value. Two keys are equal only
// when all four parts are equal; keys act as interned descriptors, not bare
// string ids.
type Key[E any] struct {
	id             string
	name           string
	elementType    reflect.Type
	defaultElement E
}

// NewKey builds a key for element type E with the supplied identifier,
// display name and default element.
func NewKey[E any](id, name string, defaultElement E) Key[E] {
	var zero E
	return Key[E]{
		id:             id,
		name:           name,
		elementType:    reflect.TypeOf(&zero).Elem(),
		defaultElement: defaultElement,
	}
}

// ID returns the stable identifier.
func (k Key[E]) ID() string { return k.id }

// Name returns the display name.
func (k Key[E]) Name() string { return k.name }

// ElementType returns the runtime type descriptor for E.
func (k Key[E]) ElementType() reflect.Type { return k.elementType }

// Default returns the default element.
func (k Key[E]) Default() E { return k.defaultElement }

// Equal reports whether both keys carry the same identifier, name, element
// type and default element.
func (k Key[E]) Equal(other Key[E]) bool {
	return k.Info().Equal(other.Info())
}

// Info returns the type-erased view used for heterogeneous matching.
func (k Key[E]) Info() KeyInfo {
	return KeyInfo{
		ID:             k.id,
		Name:           k.name,
		ElementType:    k.elementType,
		defaultElement: k.defaultElement,
	}
}

// KeyInfo is the type-erased view of a Key. Containers hold states of many
// element types; KeyInfo lets them compare keys without knowing E.
type KeyInfo struct {
	ID             string
	Name           string
	ElementType    reflect.Type
	defaultElement any
}

// Equal reports field-wise equality, comparing defaults structurally.
func (k KeyInfo) Equal(other KeyInfo) bool {
	return k.ID == other.ID &&
		k.Name == other.Name &&
		k.ElementType == other.ElementType &&
		reflect.DeepEqual(k.defaultElement, other.defaultElement)
}
