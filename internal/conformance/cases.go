// Package conformance holds the inputs every parser in the module is held
// to. Each parser's tests walk these tables, so all of them accept the same
// language and report the same error kinds.
package conformance

import (
	"strings"

	"github.com/clockworkengineer/bencode-sub000/token"
)

// Case is a single input. For accepted inputs Want is the canonical
// encoding of the parsed value and Kind is token.NoError.
type Case struct {
	Name string
	In   string
	Want string
	Kind token.Kind
}

func (c Case) OK() bool { return c.Kind == token.NoError }

func ok(name, in, want string) Case {
	if want == "" {
		want = in
	}
	return Case{Name: name, In: in, Want: want}
}

func bad(name, in string, k token.Kind) Case {
	return Case{Name: name, In: in, Kind: k}
}

// Valid inputs with no trailing bytes.
var Valid = []Case{
	ok("zero", "i0e", ""),
	ok("positive", "i42e", ""),
	ok("negative", "i-42e", ""),
	ok("max int64", "i9223372036854775807e", ""),
	ok("min int64", "i-9223372036854775808e", ""),
	ok("leading zeros", "i007e", "i7e"),
	ok("negative leading zeros", "i-007e", "i-7e"),
	ok("empty string", "0:", ""),
	ok("string", "4:spam", ""),
	ok("length leading zeros", "03:abc", "3:abc"),
	ok("binary string", "3:\x00\xff\x01", ""),
	ok("string with grammar bytes", "5:ie:dl", ""),
	ok("empty list", "le", ""),
	ok("empty dictionary", "de", ""),
	ok("list", "li1ei2ee", ""),
	ok("mixed list", "l4:spami42ee", ""),
	ok("nested lists", "llleee", ""),
	ok("dictionary", "d3:agei25e4:name4:Johne", ""),
	ok("empty first key", "d0:i1e1:ai2ee", ""),
	ok("nested containers", "d1:ald1:bleeee", ""),
	ok("dictionary of strings", "d3:cow3:moo4:spam4:eggse", ""),
	ok("prefix keys", "d1:ai1e2:aai2ee", ""),
	ok("binary keys", "d1:\x01i1e1:\xffi2ee", ""),
	ok("list of dictionaries", "ld1:ai1eed1:bi2eee", ""),
}

// Invalid inputs and the kind every parser must report.
var Invalid = []Case{
	bad("empty", "", token.EmptyInput),
	bad("negative zero", "i-0e", token.InvalidInteger),
	bad("negative zeros", "i-00e", token.InvalidInteger),
	bad("empty integer", "ie", token.InvalidInteger),
	bad("bare minus", "i-e", token.InvalidInteger),
	bad("plus sign", "i+1e", token.InvalidInteger),
	bad("fraction", "i1.5e", token.InvalidInteger),
	bad("letters", "i12ae", token.InvalidInteger),
	bad("overflow", "i9223372036854775808e", token.InvalidInteger),
	bad("overflow digit", "i92233720368547758070e", token.InvalidInteger),
	bad("underflow", "i-9223372036854775809e", token.InvalidInteger),
	bad("unterminated integer", "i42", token.UnterminatedInteger),
	bad("bare i", "i", token.UnterminatedInteger),
	bad("unterminated in list", "li1", token.UnterminatedInteger),
	bad("short string", "10:short", token.StringTooShort),
	bad("short key", "d5:abc", token.StringTooShort),
	bad("short in list", "l3:ab", token.StringTooShort),
	bad("colon only", ":", token.InvalidStringLength),
	bad("colon payload", ":abc", token.InvalidStringLength),
	bad("no colon", "5", token.InvalidStringLength),
	bad("bad length", "3x:abc", token.InvalidStringLength),
	bad("negative length in list", "l1-:ae", token.InvalidStringLength),
	bad("huge length", "99999999999999999999999:a", token.InvalidStringLength),
	bad("unterminated list", "l", token.UnterminatedList),
	bad("unterminated list items", "li1ei2e", token.UnterminatedList),
	bad("unterminated nested list", "lle", token.UnterminatedList),
	bad("unterminated dictionary", "d", token.UnterminatedDictionary),
	bad("dictionary missing value", "d1:a", token.UnterminatedDictionary),
	bad("dictionary missing end", "d1:ai1e", token.UnterminatedDictionary),
	bad("integer key", "di1ei2ee", token.DictKeyMustBeString),
	bad("list key", "dlei1ee", token.DictKeyMustBeString),
	bad("colon key", "d:e", token.DictKeyMustBeString),
	bad("keys out of order", "d3:bbbi1e3:aaai2ee", token.DictKeysOutOfOrder),
	bad("duplicate keys", "d3:aaai1e3:aaai2ee", token.DictKeysOutOfOrder),
	bad("prefix after longer", "d2:aai1e1:ai2ee", token.DictKeysOutOfOrder),
	bad("nested out of order", "ld1:bi1e1:ai2eee", token.DictKeysOutOfOrder),
	bad("unexpected", "x", token.UnexpectedCharacter),
	bad("bare end", "e", token.UnexpectedCharacter),
	bad("unexpected in list", "lxe", token.UnexpectedCharacter),
	bad("minus in list", "l-1e", token.UnexpectedCharacter),
	bad("unexpected value", "d1:axe", token.UnexpectedCharacter),
}

// Strict inputs are accepted by default and rejected under strict parsing.
var Strict = []Case{
	bad("integer leading zero", "i007e", token.InvalidInteger),
	bad("negative leading zero", "i-01e", token.InvalidInteger),
	bad("length leading zero", "03:abc", token.InvalidStringLength),
	bad("key length leading zero", "d01:ai1ee", token.InvalidStringLength),
}

// Trailing inputs have bytes after a complete value. Want is the canonical
// encoding of the leading value.
var Trailing = []Case{
	{Name: "two integers", In: "i1ei2e", Want: "i1e", Kind: token.TrailingData},
	{Name: "garbage", In: "lex", Want: "le", Kind: token.TrailingData},
	{Name: "extra end", In: "dee", Want: "de", Kind: token.TrailingData},
}

// Nested returns depth lists nested inside one another.
func Nested(depth int) string {
	return strings.Repeat("l", depth) + strings.Repeat("e", depth)
}

// NestedDictionaries returns depth dictionaries, each holding the next under
// the key "a".
func NestedDictionaries(depth int) string {
	return strings.Repeat("d1:a", depth) + "i0e" + strings.Repeat("e", depth)
}
