// Package dispatch classifies runtime values and maps them to the
// handler-set responsible for values of that shape, mirroring Underscore's
// Dispatch::toClass.
//
// # Kinds and handler-sets
//
// Every classifiable value has exactly one [Kind]. Each Kind belongs to one
// [HandlerSet]:
//
//	Callable            → Functions
//	Number              → Number
//	Sequence, Mapping   → Arrays
//	Record              → Objects
//	Null, Text, Bool    → Strings
//
// Classification is a type switch over the builtin types. Named and
// composite types the switch cannot enumerate (for example []int or a
// user-defined struct) fall back to their reflect.Kind. Types may also
// classify themselves by implementing [Classifier].
//
//	hs, err := dispatch.Resolve(map[string]any{"a": 1}) // Arrays, nil
//	hs, err  = dispatch.Resolve(3.14)                   // Number, nil
//	_, err   = dispatch.Resolve(make(chan int))         // ErrUnknownType
//
// # Unknown types
//
// Channels, unsafe pointers, complex numbers and open resource handles
// (non-nil pointers to io.Closer structs without exported fields, such as
// *os.File) cannot be routed to any handler-set. [Resolve] returns an
// [*UnknownTypeError] for them; use errors.Is with [ErrUnknownType].
package dispatch
