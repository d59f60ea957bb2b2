package iupac_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifguard/iupac"
)

func TestComplement_Involution(t *testing.T) {
	want := map[iupac.Base]iupac.Base{iupac.A: iupac.T, iupac.C: iupac.G, iupac.G: iupac.C, iupac.T: iupac.A}
	for b, c := range want {
		assert.Equal(t, c, iupac.Complement(b), "complement of %s", b)
		assert.Equal(t, b, iupac.Complement(iupac.Complement(b)))
	}
	assert.Equal(t, iupac.None, iupac.Complement(iupac.None))
}

func TestParseCode_Expansions(t *testing.T) {
	cases := map[byte]string{
		'A': "A", 'C': "C", 'G': "G", 'T': "T",
		'W': "AT", 'S': "CG", 'M': "AC", 'K': "GT", 'R': "AG", 'Y': "CT",
		'B': "CGT", 'D': "AGT", 'H': "ACT", 'V': "ACG", 'N': "ACGT",
		'-': "", 'r': "AG",
	}
	for c, want := range cases {
		code, err := iupac.ParseCode(c)
		require.NoError(t, err, "code %q", c)
		got := ""
		for _, b := range code.Bases() {
			got += b.String()
		}
		assert.Equal(t, want, got, "expansion of %q", c)
	}
}

func TestParseMotif_Errors(t *testing.T) {
	_, err := iupac.ParseMotif("")
	require.True(t, errors.Is(err, iupac.ErrEmptyMotif), "got %v", err)

	_, err = iupac.ParseMotif("GAXTTC")
	require.True(t, errors.Is(err, iupac.ErrInvalidCode), "got %v", err)
	assert.Contains(t, err.Error(), "position 3")
}

func TestMotif_ReverseComplement(t *testing.T) {
	m := iupac.MustParseMotif("GAATTC")
	assert.Equal(t, "GAATTC", m.ReverseComplement().String())
	assert.True(t, m.IsPalindrome())

	m = iupac.MustParseMotif("ACRN")
	assert.Equal(t, "NYGT", m.ReverseComplement().String())
	assert.False(t, m.IsPalindrome())
}

func TestMotif_Find(t *testing.T) {
	m := iupac.MustParseMotif("GRC")
	assert.Equal(t, 2, m.Find("TTGACTT"))
	assert.Equal(t, 1, m.Find("AGGCA"))
	assert.Equal(t, -1, m.Find("GTC"))
	// 'N' in the sequence never matches
	assert.Equal(t, -1, iupac.MustParseMotif("N").Find("NNN"))
	// match-nothing code
	assert.Equal(t, -1, iupac.MustParseMotif("-").Find("ACGT"))
}
