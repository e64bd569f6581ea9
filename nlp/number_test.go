package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberDigitRunWins(t *testing.T) {
	lex := DefaultLexicon()

	// A literal digit run beats spelled-out numerals anywhere in the text.
	assert.Equal(t, 12.0, lex.ParseNumber("پانچ 12 دس"))
	assert.Equal(t, 200.0, lex.ParseNumber("بل بنائیں 200 کیش"))
	assert.Equal(t, 7.0, lex.ParseNumber("7 اور 9"))
}

func TestParseNumberArabicIndicDigits(t *testing.T) {
	lex := DefaultLexicon()

	assert.Equal(t, 25.0, lex.ParseNumber("رقم ۲۵ روپے"))
	assert.Equal(t, 304.0, lex.ParseNumber("٣٠٤"))
}

func TestParseNumberSpelledComposition(t *testing.T) {
	lex := DefaultLexicon()

	assert.Equal(t, 200.0, lex.ParseNumber("دو سو"))
	assert.Equal(t, 1500.0, lex.ParseNumber("ایک ہزار پانچ سو"))
	assert.Equal(t, 300000.0, lex.ParseNumber("تین لاکھ"))
	// A bare scale word counts as one of that scale.
	assert.Equal(t, 1000.0, lex.ParseNumber("ہزار"))
	assert.Equal(t, 15.0, lex.ParseNumber("پانچ دس"))
}

func TestParseNumberNoNumerals(t *testing.T) {
	lex := DefaultLexicon()

	assert.Equal(t, 0.0, lex.ParseNumber(""))
	assert.Equal(t, 0.0, lex.ParseNumber("بل بنائیں"))
	assert.Equal(t, 0.0, lex.ParseNumber("hello world"))
}
