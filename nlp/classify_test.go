package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classifyText(t *testing.T, text string) Intent {
	t.Helper()
	lex := DefaultLexicon()
	return lex.Classify(text, lex.Extract(text))
}

func TestClassifyStockMutations(t *testing.T) {
	assert.Equal(t, IntentIncreaseStock, classifyText(t, "سیب کا اسٹاک 5 بڑھا"))
	assert.Equal(t, IntentDecreaseStock, classifyText(t, "سیب کا اسٹاک 5 گھٹا"))
}

func TestClassifyPrecedence(t *testing.T) {
	// Decrease beats the sales trigger when both appear with a product.
	assert.Equal(t, IntentDecreaseStock, classifyText(t, "سیب گھٹا اور سیلز دکھاؤ"))
	// Increase beats the stock-query trigger.
	assert.Equal(t, IntentIncreaseStock, classifyText(t, "سیب کا اسٹاک بڑھا"))
}

func TestClassifyMutationRequiresProduct(t *testing.T) {
	// A direction word with no resolved product must not mutate; the
	// utterance falls through to the stock query rule.
	assert.Equal(t, IntentStockQuery, classifyText(t, "اسٹاک بڑھا دو"))
}

func TestClassifyQueriesAndReports(t *testing.T) {
	assert.Equal(t, IntentStockQuery, classifyText(t, "سیب کا اسٹاک کتنا ہے"))
	assert.Equal(t, IntentStockQuery, classifyText(t, "اسٹاک دکھاؤ"))
	assert.Equal(t, IntentSalesReport, classifyText(t, "آج کی خریداری دکھاؤ"))
	assert.Equal(t, IntentProductList, classifyText(t, "پروڈکٹ لسٹ دکھاؤ"))
	assert.Equal(t, IntentCreateBill, classifyText(t, "بل بنائیں 200 کیش"))
}

func TestClassifyUnrecognized(t *testing.T) {
	assert.Equal(t, IntentUnrecognized, classifyText(t, "آج موسم اچھا ہے"))
	assert.Equal(t, IntentUnrecognized, classifyText(t, ""))
}
