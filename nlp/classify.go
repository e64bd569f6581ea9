package nlp

import "strings"

// Classify selects exactly one intent for the transcript. The chain is
// ordered and the first matching rule wins. Stock mutations come first and
// require a resolved product, so an utterance naming a product without a
// direction word falls through to the query and report rules instead of
// mutating anything.
func (l *Lexicon) Classify(text string, e Entities) Intent {
	t := strings.ToLower(text)

	switch {
	case e.Product != "" && l.matches(t, IntentDecreaseStock):
		return IntentDecreaseStock
	case e.Product != "" && l.matches(t, IntentIncreaseStock):
		return IntentIncreaseStock
	case l.matches(t, IntentStockQuery):
		return IntentStockQuery
	case l.matches(t, IntentSalesReport):
		return IntentSalesReport
	case l.matches(t, IntentProductList):
		return IntentProductList
	case l.matches(t, IntentCreateBill):
		return IntentCreateBill
	}
	return IntentUnrecognized
}

func (l *Lexicon) matches(text string, intent Intent) bool {
	for _, trigger := range l.Triggers[intent] {
		if strings.Contains(text, trigger) {
			return true
		}
	}
	return false
}
