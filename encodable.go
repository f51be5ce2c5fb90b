package bendy

import (
	"reflect"
	"sort"
)

// Encodable is the capability a type implements to be serialized by the
// engine.
//
// Go pointers forward the capability for free: when T implements Encodable
// with value receivers, *T (and pointers to pointers) encode identically to
// T through the language's method sets. No wrapper types are needed for
// indirection.
type Encodable interface {
	// MaxDepth is an upper bound on the number of container levels (lists
	// and dicts) this type's encoding can nest. Leaves report 0.
	// Implementations must return a constant without touching receiver
	// data. The bound is a claim the Encoder re-verifies against its live
	// depth counter, not a substitute for the runtime check.
	MaxDepth() int

	// Encode writes exactly one value into the given slot. Writing zero
	// or more than one value is an invalid_state error.
	Encode(e SingleItemEncoder) error
}

// String emits UTF-8 text as a byte string.
type String string

// MaxDepth implements Encodable.
func (String) MaxDepth() int { return 0 }

// Encode implements Encodable.
func (s String) Encode(e SingleItemEncoder) error {
	return e.EmitString(string(s))
}

// Int emits a signed integer as a canonical integer token. The token form
// is independent of width and signedness, so narrower integer types are
// covered by conversion at the call site.
type Int int64

// MaxDepth implements Encodable.
func (Int) MaxDepth() int { return 1 }

// Encode implements Encodable.
func (i Int) Encode(e SingleItemEncoder) error {
	return e.EmitInt(int64(i))
}

// Uint emits an unsigned integer as a canonical integer token. Covers the
// upper half of the uint64 range that Int cannot represent.
type Uint uint64

// MaxDepth implements Encodable.
func (Uint) MaxDepth() int { return 1 }

// Encode implements Encodable.
func (u Uint) Encode(e SingleItemEncoder) error {
	return e.EmitUint(uint64(u))
}

// AsString emits raw bytes as a single byte-string token, bypassing any
// Encodable behavior the underlying data might otherwise have. It
// disambiguates "this byte buffer is a string" from "this byte buffer is a
// list of small integers": a []byte pushed through List would produce the
// latter. Construct by conversion from any ~[]byte or ~string value.
type AsString []byte

// MaxDepth implements Encodable.
func (AsString) MaxDepth() int { return 1 }

// Encode implements Encodable.
func (a AsString) Encode(e SingleItemEncoder) error {
	return e.EmitBytes(a)
}

// maxDepthOf reads the depth bound from E's zero value. MaxDepth must not
// touch receiver data, so when E is a pointer type a freshly allocated
// pointee stands in for the nil zero value.
func maxDepthOf[E Encodable]() int {
	var elem E
	rv := reflect.ValueOf(&elem).Elem()
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}
	return elem.MaxDepth()
}

// List emits a homogeneous slice as a bencode list in iteration order.
//
// E must be a concrete adapter type or a pointer to one, not the Encodable
// interface itself: the depth bound is read from E's type.
type List[E Encodable] []E

// MaxDepth implements Encodable.
func (List[E]) MaxDepth() int {
	return maxDepthOf[E]() + 1
}

// Encode implements Encodable.
func (l List[E]) Encode(e SingleItemEncoder) error {
	return e.EmitList(func(le *ListEncoder) error {
		for _, item := range l {
			if err := le.Emit(item); err != nil {
				return err
			}
		}
		return nil
	})
}

// Pair is one entry of a Pairs sequence.
type Pair[V Encodable] struct {
	Key   string
	Value V
}

// Pairs emits a key-ordered sequence of entries as a dict, in the order
// given. It is the ordered-mapping analog of Dict: callers that keep their
// entries sorted by raw key bytes get canonical output with no sorting
// pass. Unsorted input produces non-canonical output.
type Pairs[V Encodable] []Pair[V]

// MaxDepth implements Encodable.
func (Pairs[V]) MaxDepth() int {
	return maxDepthOf[V]() + 1
}

// Encode implements Encodable.
func (p Pairs[V]) Encode(e SingleItemEncoder) error {
	return e.EmitDict(func(de *DictEncoder) error {
		for _, kv := range p {
			if err := de.EmitPair([]byte(kv.Key), kv.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Dict emits a Go map as a dict with keys sorted by raw key bytes. Go
// string comparison is byte-lexicographic, so sorting the keys as strings
// yields the canonical order regardless of map iteration order.
type Dict[V Encodable] map[string]V

// MaxDepth implements Encodable.
func (Dict[V]) MaxDepth() int {
	return maxDepthOf[V]() + 1
}

// Encode implements Encodable.
func (d Dict[V]) Encode(e SingleItemEncoder) error {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return e.EmitDict(func(de *DictEncoder) error {
		for _, k := range keys {
			if err := de.EmitPair([]byte(k), d[k]); err != nil {
				return err
			}
		}
		return nil
	})
}
