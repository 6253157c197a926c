package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: None < Integer < String < List < Dictionary
		{"None < Integer", None(), FromInt(0), -1},
		{"Integer < String", FromInt(1), FromString("a"), -1},
		{"String < List", FromString("a"), FromSlice(nil), -1},
		{"List < Dictionary", FromSlice(nil), FromKeyVals(nil), -1},

		{"Int < Int", FromInt(-1), FromInt(2), -1},
		{"Int == Int", FromInt(7), FromInt(7), 0},

		{"String < String", FromString("a"), FromString("b"), -1},
		{"bytes compare unsigned", FromString("\x7f"), FromBytes([]byte{0x80}), -1},
		{"prefix first", FromString("ab"), FromString("abc"), -1},

		{"Empty List == Empty List", FromSlice(nil), NewList(), 0},
		{"Short List < Long List", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"List Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{"Empty Dictionary == Empty Dictionary", FromKeyVals(nil), NewDictionary(), 0},
		{"Short Dictionary < Long Dictionary",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}, {Key: FromString("b"), Val: FromInt(2)}}),
			-1},
		{"Dictionary Key Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(1)}}),
			-1},
		{"Dictionary Value Comparison",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(2)}}),
			-1},
		{"Dictionary order independent",
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(2)}, {Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}, {Key: FromString("b"), Val: FromInt(2)}}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			if tt.expected == 0 && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal nodes hash differently")
			}
		})
	}
}
