package digest

import (
	"testing"

	"github.com/eugenesimakin/bendy"
)

func TestSumDeterminism(t *testing.T) {
	first := bendy.Dict[bendy.Int]{}
	for i, k := range []string{"c", "a", "b"} {
		first[k] = bendy.Int(i)
	}
	second := bendy.Dict[bendy.Int]{"b": 1, "c": 0, "a": 2}

	a, err := Sum(first)
	if err != nil {
		t.Fatalf("Sum(first) failed: %v", err)
	}
	b, err := Sum(second)
	if err != nil {
		t.Fatalf("Sum(second) failed: %v", err)
	}
	if a != b {
		t.Errorf("equal values hashed differently: %s vs %s", Hex(a), Hex(b))
	}
}

func TestSumDistinguishesValues(t *testing.T) {
	a, err := Sum(bendy.String("foo"))
	if err != nil {
		t.Fatalf("Sum() failed: %v", err)
	}
	b, err := Sum(bendy.String("bar"))
	if err != nil {
		t.Fatalf("Sum() failed: %v", err)
	}
	if a == b {
		t.Error("different values produced the same digest")
	}
}

func TestSumMatchesSumBytes(t *testing.T) {
	v := bendy.List[bendy.String]{"foo", "bar"}

	direct, err := Sum(v)
	if err != nil {
		t.Fatalf("Sum() failed: %v", err)
	}
	data, err := bendy.Encode(v)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if direct != SumBytes(data) {
		t.Error("Sum and SumBytes disagree on the same value")
	}
}

func TestSumWith(t *testing.T) {
	viaClosure, err := SumWith(func(s bendy.SingleItemEncoder) error {
		return s.EmitList(func(l *bendy.ListEncoder) error {
			return l.Emit(bendy.Int(42))
		})
	}, 1)
	if err != nil {
		t.Fatalf("SumWith() failed: %v", err)
	}

	viaValue, err := Sum(bendy.List[bendy.Int]{42})
	if err != nil {
		t.Fatalf("Sum() failed: %v", err)
	}
	if viaClosure != viaValue {
		t.Error("closure and value emissions hashed differently")
	}
}

func TestSumWithPropagatesFailure(t *testing.T) {
	_, err := SumWith(func(s bendy.SingleItemEncoder) error {
		return s.EmitList(func(l *bendy.ListEncoder) error {
			return l.Emit(bendy.List[bendy.Int]{1})
		})
	}, 1)
	if err == nil {
		t.Error("expected depth failure to propagate")
	}
}

func TestHex(t *testing.T) {
	var sum [Size]byte
	sum[0] = 0xab
	sum[31] = 0x01
	got := Hex(sum)
	if len(got) != 64 {
		t.Fatalf("Hex() length = %d, want 64", len(got))
	}
	if got[:2] != "ab" || got[62:] != "01" {
		t.Errorf("Hex() = %s", got)
	}
}
