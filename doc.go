// Package bendy serializes in-memory values into canonical bencode.
//
// Two semantically equal inputs always serialize to byte-identical output:
// dict keys are emitted in ascending byte-lexicographic order and integer
// and length tokens carry no redundant digits. That makes the output safe
// to hash and to exchange over protocols that compare raw bytes.
//
// # Architecture Overview
//
// The module is organized into a small set of packages:
//
//	bendy/          Root package: the Encodable contract, the Encoder
//	                driver, and adapters for builtin shapes
//	├── errors/     Structured error types (phase + kind + path)
//	├── digest/     BLAKE3 content digests over canonical encodings
//	└── cmd/bendy/  CLI: encode JSON documents to canonical bencode
//
// # Quick Start
//
// Serialize a builtin shape:
//
//	data, err := bendy.Encode(bendy.Dict[bendy.String]{
//	    "announce": "http://tracker.example/announce",
//	})
//	// data == []byte("d8:announce31:http://tracker.example/announcee")
//
// Make a record type serializable by implementing Encodable:
//
//	type File struct {
//	    Length int64
//	    Path   []string
//	}
//
//	func (File) MaxDepth() int { return 2 }
//
//	func (f File) Encode(e bendy.SingleItemEncoder) error {
//	    return e.EmitDict(func(d *bendy.DictEncoder) error {
//	        if err := d.EmitPair([]byte("length"), bendy.Int(f.Length)); err != nil {
//	            return err
//	        }
//	        path := make(bendy.List[bendy.String], len(f.Path))
//	        for i, p := range f.Path {
//	            path[i] = bendy.String(p)
//	        }
//	        return d.EmitPair([]byte("path"), path)
//	    })
//	}
//
// Custom impls must emit dict pairs in final key order themselves; the
// DictEncoder does not sort for them.
//
// # Depth Bounds
//
// Every Encodable declares MaxDepth, an upper bound on the container
// nesting its encoding can produce, obtainable without touching instance
// data. The Encoder verifies the claim lazily: a live depth counter is
// checked against the configured ceiling on every container entry, so an
// understated bound still cannot cause unbounded work. When a value nests
// deeper than it declared, Emit logs a warning through the package logger
// (a no-op unless SetLogger installed a real one).
//
// An Encoder instance is single-use and not safe for concurrent emission;
// independent instances share no state.
package bendy
