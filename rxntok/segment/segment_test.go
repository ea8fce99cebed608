package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReactionClass(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"MultiGroup", "2.12.13", true},
		{"SingleGroup", "7", true},
		{"ManyDigits", "10.200.3", true},
		{"Empty", "", false},
		{"DoubleDot", "2..3", false},
		{"TrailingDot", "1.2.", false},
		{"LeadingDot", ".1.2", false},
		{"Letter", "2.a", false},
		{"SMILES", "CCO", false},
		{"EmbeddedClass", "x2.12.13", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReactionClass(tt.in))
		})
	}
}

func TestSplitSMILES(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"Reaction",
			"CCO>>CCCBr",
			[]string{"C", "C", "O", ">>", "C", "C", "C", "Br"},
		},
		{
			"BracketedAtom",
			"C[N+](C)(C)C.Cl",
			[]string{"C", "[N+]", "(", "C", ")", "(", "C", ")", "C", ".", "Cl"},
		},
		{
			"TwoLetterBeatsOneLetter",
			"ClBrSi",
			[]string{"Cl", "Br", "Si"},
		},
		{
			"RingsAndBonds",
			"c1ccccc1/C=C\\%10",
			[]string{"c", "1", "c", "c", "c", "c", "c", "1", "/", "C", "=", "C", "\\", "%", "1", "0"},
		},
		{
			"IsotopeBracket",
			"[13CH4]",
			[]string{"[13CH4]"},
		},
		{
			"OversizedBracketFallsApart",
			"[CCCCCCCCCCCC]",
			[]string{"C", "C", "C", "C", "C", "C", "C", "C", "C", "C", "C", "C"},
		},
		{
			"BareArrowHalfDropped",
			"C>N",
			[]string{"C", "N"},
		},
		{
			"UnmatchedLettersDropped",
			"CJCj",
			[]string{"C", "C"},
		},
		{
			"Empty",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSMILES(tt.in))
		})
	}
}
