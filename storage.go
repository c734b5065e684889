package smallvec

// Storage is the constraint for inline array types. PA is a pointer to the
// array type A, and Slots returns a slice over the complete array.
//
// The length of the slice returned by Slots is the static capacity of a vector
// using A for inline storage. It must not change between calls.
type Storage[T any, A any] interface {
	*A
	Slots() []T
}

// Inline4 is inline storage for 4 elements.
type Inline4[T any] [4]T

// Inline8 is inline storage for 8 elements.
type Inline8[T any] [8]T

// Inline16 is inline storage for 16 elements.
type Inline16[T any] [16]T

// Inline32 is inline storage for 32 elements.
type Inline32[T any] [32]T

// Inline64 is inline storage for 64 elements.
type Inline64[T any] [64]T

func (a *Inline4[T]) Slots() []T  { return a[:] }
func (a *Inline8[T]) Slots() []T  { return a[:] }
func (a *Inline16[T]) Slots() []T { return a[:] }
func (a *Inline32[T]) Slots() []T { return a[:] }
func (a *Inline64[T]) Slots() []T { return a[:] }

// Vectors with predefined static capacities.
type (
	Vec4[T any]  = Vector[T, Inline4[T], *Inline4[T]]
	Vec8[T any]  = Vector[T, Inline8[T], *Inline8[T]]
	Vec16[T any] = Vector[T, Inline16[T], *Inline16[T]]
	Vec32[T any] = Vector[T, Inline32[T], *Inline32[T]]
	Vec64[T any] = Vector[T, Inline64[T], *Inline64[T]]
)
