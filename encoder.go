package bendy

import (
	"bytes"
	"strconv"

	"go.uber.org/zap"

	"github.com/eugenesimakin/bendy/errors"
)

// DefaultMaxDepth is the nesting ceiling used by NewEncoder when none is
// configured. Deep enough for any sane document, small enough to stop
// hostile recursion quickly.
const DefaultMaxDepth = 4096

type encoderState int

const (
	stateEmpty encoderState = iota
	stateEmitted
	stateFinalized
)

// Encoder drives exactly one top-level emission into an in-memory buffer.
// The instance is single-use: Empty until Emit or EmitWith completes,
// Finalized once Output is taken, with no way back. It is not safe for
// concurrent use; independent instances share no state.
type Encoder struct {
	buf      bytes.Buffer
	err      error
	path     []string
	maxDepth int
	depth    int
	deepest  int
	state    encoderState
}

// NewEncoder returns an encoder with the default depth ceiling.
func NewEncoder() *Encoder {
	return &Encoder{maxDepth: DefaultMaxDepth}
}

// WithMaxDepth overrides the nesting ceiling. Builder style; returns the
// same instance. The only configuration option.
func (e *Encoder) WithMaxDepth(n int) *Encoder {
	e.maxDepth = n
	return e
}

// Emit performs the encoder's single top-level emission with v. If v nests
// deeper than its declared MaxDepth claims, the discrepancy is logged
// through the package logger; the runtime ceiling check is what actually
// bounds the work.
func (e *Encoder) Emit(v Encodable) error {
	if err := e.EmitWith(v.Encode); err != nil {
		return err
	}
	if declared := v.MaxDepth(); e.deepest > declared {
		Logger().Warn("declared depth bound lower than observed nesting",
			zap.Int("declared", declared),
			zap.Int("observed", e.deepest))
	}
	return nil
}

// EmitWith performs the encoder's single top-level emission with a closure.
// Used where the value's shape is only known at runtime and no Encodable
// impl exists; the closure must write exactly one value.
func (e *Encoder) EmitWith(fn func(SingleItemEncoder) error) error {
	if e.err != nil {
		return e.err
	}
	if e.state != stateEmpty {
		return errors.InvalidState(errors.PhaseEncode, "encoder has already emitted its value")
	}
	done := false
	if err := fn(SingleItemEncoder{enc: e, done: &done}); err != nil {
		// Any nested failure invalidates the whole result.
		if e.err == nil {
			e.err = err
		}
		return err
	}
	if !done {
		e.err = errors.InvalidState(errors.PhaseEncode, "emission closure wrote no value")
		return e.err
	}
	e.state = stateEmitted
	return nil
}

// Output finalizes the encoder and returns the accumulated bytes. It fails
// before a completed emission and after a previous finalization.
func (e *Encoder) Output() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	switch e.state {
	case stateEmpty:
		return nil, errors.InvalidState(errors.PhaseFinalize, "no value has been emitted")
	case stateFinalized:
		return nil, errors.InvalidState(errors.PhaseFinalize, "output has already been taken")
	}
	e.state = stateFinalized
	return e.buf.Bytes(), nil
}

// Encode serializes v with a fresh encoder whose ceiling is v's declared
// depth bound.
func Encode(v Encodable) ([]byte, error) {
	e := NewEncoder().WithMaxDepth(v.MaxDepth())
	if err := e.Emit(v); err != nil {
		return nil, err
	}
	return e.Output()
}

func (e *Encoder) write(p []byte) error {
	if e.err != nil {
		return e.err
	}
	if _, err := e.buf.Write(p); err != nil {
		e.err = errors.WriteFailure(err)
		return e.err
	}
	return nil
}

func (e *Encoder) writeByteString(p []byte) error {
	var scratch [20]byte
	head := strconv.AppendInt(scratch[:0], int64(len(p)), 10)
	head = append(head, ':')
	if err := e.write(head); err != nil {
		return err
	}
	return e.write(p)
}

func (e *Encoder) writeInt(v int64) error {
	var scratch [22]byte
	tok := append(scratch[:0], 'i')
	tok = strconv.AppendInt(tok, v, 10)
	tok = append(tok, 'e')
	return e.write(tok)
}

func (e *Encoder) writeUint(v uint64) error {
	var scratch [22]byte
	tok := append(scratch[:0], 'i')
	tok = strconv.AppendUint(tok, v, 10)
	tok = append(tok, 'e')
	return e.write(tok)
}

// openContainer checks the ceiling before any byte of the container is
// written, so a rejected container leaves no partial token behind.
func (e *Encoder) openContainer(marker byte) error {
	if e.err != nil {
		return e.err
	}
	if e.depth+1 > e.maxDepth {
		e.err = errors.DepthLimit(clonePath(e.path), e.depth+1, e.maxDepth)
		return e.err
	}
	e.depth++
	if e.depth > e.deepest {
		e.deepest = e.depth
	}
	return e.write([]byte{marker})
}

func (e *Encoder) closeContainer() error {
	e.depth--
	return e.write([]byte{'e'})
}

func (e *Encoder) pushPath(seg string) {
	e.path = append(e.path, seg)
}

func (e *Encoder) popPath() {
	e.path = e.path[:len(e.path)-1]
}

func clonePath(p []string) []string {
	if len(p) == 0 {
		return nil
	}
	return append([]string(nil), p...)
}

// SingleItemEncoder is the handle passed to an Encodable's Encode method.
// It is bound to exactly one slot in the output stream and is consumed by
// the first emission call that completes for that slot.
type SingleItemEncoder struct {
	enc  *Encoder
	done *bool
}

func (s SingleItemEncoder) begin() error {
	if s.done == nil {
		return errors.InvalidState(errors.PhaseEncode, "encoder handle used outside an emission")
	}
	if s.enc.err != nil {
		return s.enc.err
	}
	if *s.done {
		return errors.InvalidState(errors.PhaseEncode, "slot has already been written")
	}
	return nil
}

// EmitString writes text as a length-prefixed byte string.
func (s SingleItemEncoder) EmitString(v string) error {
	return s.EmitBytes([]byte(v))
}

// EmitBytes writes a length-prefixed byte string. The payload need not be
// valid UTF-8.
func (s SingleItemEncoder) EmitBytes(p []byte) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.enc.writeByteString(p); err != nil {
		return err
	}
	*s.done = true
	return nil
}

// EmitInt writes a canonical integer token.
func (s SingleItemEncoder) EmitInt(v int64) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.enc.writeInt(v); err != nil {
		return err
	}
	*s.done = true
	return nil
}

// EmitUint writes a canonical integer token for the full uint64 range.
func (s SingleItemEncoder) EmitUint(v uint64) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.enc.writeUint(v); err != nil {
		return err
	}
	*s.done = true
	return nil
}

// EmitList opens a list slot, runs body against a sub-encoder for the
// elements, and closes the list. Fails with a depth_limit error before
// writing anything if entering the list would cross the ceiling.
func (s SingleItemEncoder) EmitList(body func(*ListEncoder) error) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.enc.openContainer('l'); err != nil {
		return err
	}
	if err := body(&ListEncoder{enc: s.enc}); err != nil {
		return err
	}
	if err := s.enc.closeContainer(); err != nil {
		return err
	}
	*s.done = true
	return nil
}

// EmitDict opens a dict slot, runs body against a pair emitter, and closes
// the dict. Key ordering is not enforced here: the Encodable impl calling
// EmitDict is responsible for delivering pairs in final key order.
func (s SingleItemEncoder) EmitDict(body func(*DictEncoder) error) error {
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.enc.openContainer('d'); err != nil {
		return err
	}
	if err := body(&DictEncoder{enc: s.enc}); err != nil {
		return err
	}
	if err := s.enc.closeContainer(); err != nil {
		return err
	}
	*s.done = true
	return nil
}

// Emit delegates to v.Encode. The single recursive entry point all
// container impls use to serialize their children.
func (s SingleItemEncoder) Emit(v Encodable) error {
	return v.Encode(s)
}

// ListEncoder emits the elements of one list body in iteration order.
type ListEncoder struct {
	enc *Encoder
	n   int
}

// Emit serializes one element.
func (l *ListEncoder) Emit(v Encodable) error {
	return l.EmitWith(v.Encode)
}

// EmitWith serializes one element from a closure; used where the element's
// shape is only known at runtime.
func (l *ListEncoder) EmitWith(fn func(SingleItemEncoder) error) error {
	l.enc.pushPath("[" + strconv.Itoa(l.n) + "]")
	defer l.enc.popPath()
	done := false
	if err := fn(SingleItemEncoder{enc: l.enc, done: &done}); err != nil {
		return err
	}
	if !done {
		return errors.New(errors.PhaseEncode, errors.KindInvalidState).
			Path(clonePath(l.enc.path)...).
			Detail("element emission wrote no value").
			Build()
	}
	l.n++
	return nil
}

// DictEncoder emits the entries of one dict body.
type DictEncoder struct {
	enc *Encoder
}

// EmitPair writes one key and serializes its value.
func (d *DictEncoder) EmitPair(key []byte, v Encodable) error {
	return d.EmitPairWith(key, v.Encode)
}

// EmitPairWith writes one key and serializes its value from a closure.
func (d *DictEncoder) EmitPairWith(key []byte, fn func(SingleItemEncoder) error) error {
	if err := d.enc.writeByteString(key); err != nil {
		return err
	}
	d.enc.pushPath(string(key))
	defer d.enc.popPath()
	done := false
	if err := fn(SingleItemEncoder{enc: d.enc, done: &done}); err != nil {
		return err
	}
	if !done {
		return errors.New(errors.PhaseEncode, errors.KindInvalidState).
			Path(clonePath(d.enc.path)...).
			Detail("entry emission wrote no value").
			Build()
	}
	return nil
}
