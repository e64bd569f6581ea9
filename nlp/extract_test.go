package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProduct(t *testing.T) {
	lex := DefaultLexicon()

	assert.Equal(t, "Apple", lex.Extract("سیب کا اسٹاک بڑھا").Product)
	assert.Equal(t, "Mango", lex.Extract("آم کتنے ہیں").Product)
	// Canonical English name works when no Urdu alias matches.
	assert.Equal(t, "Apple", lex.Extract("apple stock check").Product)
	// No product mentioned is a valid outcome.
	assert.Equal(t, "", lex.Extract("بل بنائیں 200 کیش").Product)
}

func TestExtractQuantity(t *testing.T) {
	lex := DefaultLexicon()

	assert.Equal(t, 5, lex.Extract("سیب کا اسٹاک 5 بڑھا").Quantity)
	assert.Equal(t, 2, lex.Extract("دو سیب شامل کر").Quantity)
	// Scale words are ignored for quantity; only unit words sum.
	assert.Equal(t, 2, lex.Extract("دو سو").Quantity)
	// Quantity never comes back zero.
	assert.Equal(t, 1, lex.Extract("سیب کا اسٹاک بڑھا").Quantity)
	assert.Equal(t, 1, lex.Extract("").Quantity)
}

func TestExtractPaymentMethod(t *testing.T) {
	lex := DefaultLexicon()

	assert.Equal(t, PaymentCash, lex.Extract("بل بنائیں 200 کیش").PaymentMethod)
	assert.Equal(t, PaymentCash, lex.Extract("نقد ادائیگی").PaymentMethod)
	assert.Equal(t, PaymentCard, lex.Extract("کارڈ سے بل").PaymentMethod)
	assert.Equal(t, PaymentCard, lex.Extract("credit card bill").PaymentMethod)
	assert.Equal(t, PaymentUnknown, lex.Extract("بل بنائیں").PaymentMethod)
}

func TestExtractAmount(t *testing.T) {
	lex := DefaultLexicon()

	assert.Equal(t, 200.0, lex.Extract("بل بنائیں 200 کیش").Amount)
	assert.Equal(t, 1500.0, lex.Extract("بل ایک ہزار پانچ سو").Amount)
	assert.Equal(t, 0.0, lex.Extract("بل بنائیں").Amount)
}
