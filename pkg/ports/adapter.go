package ports

// Adapter is the capability set that lets the chain engine manipulate opaque
// state payloads of type T.
type Adapter[T any] interface {
	// Clone returns a new owned copy of data. An error signals that the copy
	// could not be produced; the engine reports it as an allocation failure.
	Clone(data T) (T, error)

	// Compare returns 0 iff a and b are logically the same state.
	Compare(a, b T) int

	// Print renders one state. It is the engine's only output channel.
	Print(data T)

	// Release frees a payload previously produced by Clone.
	Release(data T)

	// IsTerminal reports whether a walk ends when data is emitted.
	IsTerminal(data T) bool
}

// Hasher is an optional extension of Adapter. When the adapter implements it,
// the state database keeps a hash index and only compares payloads that share
// a bucket. Hash must agree with Compare: equal payloads hash equally.
type Hasher[T any] interface {
	Hash(data T) uint64
}

// AdapterFuncs builds an Adapter out of plain functions.
// CompareFunc is required; the other fields fall back to a value copy,
// no-op printing, no-op release and "never terminal".
type AdapterFuncs[T any] struct {
	CloneFunc      func(T) (T, error)
	CompareFunc    func(a, b T) int
	PrintFunc      func(T)
	ReleaseFunc    func(T)
	IsTerminalFunc func(T) bool
}

var _ Adapter[int] = AdapterFuncs[int]{}

func (f AdapterFuncs[T]) Clone(data T) (T, error) {
	if f.CloneFunc == nil {
		return data, nil
	}
	return f.CloneFunc(data)
}

func (f AdapterFuncs[T]) Compare(a, b T) int {
	return f.CompareFunc(a, b)
}

func (f AdapterFuncs[T]) Print(data T) {
	if f.PrintFunc != nil {
		f.PrintFunc(data)
	}
}

func (f AdapterFuncs[T]) Release(data T) {
	if f.ReleaseFunc != nil {
		f.ReleaseFunc(data)
	}
}

func (f AdapterFuncs[T]) IsTerminal(data T) bool {
	if f.IsTerminalFunc == nil {
		return false
	}
	return f.IsTerminalFunc(data)
}
