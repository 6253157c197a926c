package token

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"
)

func TestKindCodes(t *testing.T) {
	codes := map[Kind]int{
		EmptyInput:             1,
		InvalidInteger:         2,
		UnterminatedInteger:    3,
		InvalidStringLength:    4,
		StringTooShort:         5,
		UnterminatedList:       6,
		UnterminatedDictionary: 7,
		DictKeysOutOfOrder:     8,
		DictKeyMustBeString:    9,
		UnexpectedCharacter:    10,
		FileNotFound:           11,
		IOFailure:              12,
	}
	for k, want := range codes {
		if got := k.Code(); got != want {
			t.Errorf("%s: got code %d want %d", k, got, want)
		}
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("got %s want %s", back, k)
		}
		if k.Error() == "" {
			t.Errorf("%s has no message", k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Bogus")); err == nil {
		t.Errorf("expected error")
	}
}

func TestKindOf(t *testing.T) {
	_, openErr := os.Open("/definitely/not/here")
	tests := []struct {
		err  error
		want Kind
	}{
		{nil, NoError},
		{InvalidInteger, InvalidInteger},
		{&SyntaxError{Kind: StringTooShort}, StringTooShort},
		{fmt.Errorf("wrapped: %w", &SyntaxError{Kind: UnterminatedList}), UnterminatedList},
		{openErr, FileNotFound},
		{ioErr("x", fs.ErrNotExist), FileNotFound},
		{ioErr("x", errors.New("disk on fire")), IOFailure},
		{errors.New("other"), IOFailure},
	}
	for i, tc := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestSyntaxErrorIs(t *testing.T) {
	src := NewStringSource("d3:bbbi1e3:aaai2ee")
	err := error(ErrorAt(DictKeysOutOfOrder, src, 9))
	if !errors.Is(err, DictKeysOutOfOrder) {
		t.Errorf("errors.Is failed for %v", err)
	}
	if errors.Is(err, InvalidInteger) {
		t.Errorf("unexpected match for %v", err)
	}
	u := UnexpectedAt('x', src, 0)
	if u.Char != 'x' || u.Kind != UnexpectedCharacter {
		t.Errorf("got %+v", u)
	}
}

func TestKindNoAlloc(t *testing.T) {
	n := testing.AllocsPerRun(100, func() {
		var err error = StringTooShort
		if err == nil {
			t.Fatal("nil")
		}
	})
	if n != 0 {
		t.Errorf("got %v allocs want 0", n)
	}
}
