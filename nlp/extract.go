package nlp

import "strings"

// Entities is the structured extraction produced from a transcript.
// Product is the canonical name, empty when nothing matched — that is a
// valid outcome, not an error.
type Entities struct {
	Product       string
	Quantity      int
	Amount        float64
	PaymentMethod string
}

// Extract pulls the candidate product, quantity, monetary amount and
// payment method out of raw transcript text.
func (l *Lexicon) Extract(text string) Entities {
	t := strings.ToLower(text)
	return Entities{
		Product:       l.FindProduct(t),
		Quantity:      l.extractQuantity(t),
		Amount:        l.ParseNumber(t),
		PaymentMethod: l.PaymentMethod(t),
	}
}

// FindProduct resolves the first product alias occurring in the lowercased
// transcript, falling back to literal canonical English names. Returns ""
// when no product is mentioned.
func (l *Lexicon) FindProduct(text string) string {
	for _, a := range l.ProductAliases {
		if strings.Contains(text, a.Alias) {
			return a.Canonical
		}
	}
	for _, name := range l.CanonicalNames {
		if strings.Contains(text, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}

// extractQuantity prefers the first explicit digit run; otherwise it sums
// individual Urdu unit words. Spoken quantities in this domain are small,
// so scale words are deliberately ignored here. Never returns 0 — a
// zero-quantity stock mutation would silently no-op, so the default is 1.
func (l *Lexicon) extractQuantity(text string) int {
	if run := digitRun.FindString(text); run != "" {
		return int(digitRunValue(run))
	}

	qty := 0
	for _, w := range strings.Fields(text) {
		if v, ok := l.NumberWords[w]; ok {
			qty += v
		}
	}
	if qty == 0 {
		return 1
	}
	return qty
}

// PaymentMethod resolves cash/card by trigger-word match, defaulting to
// unknown.
func (l *Lexicon) PaymentMethod(text string) string {
	for _, w := range l.CashWords {
		if strings.Contains(text, w) {
			return PaymentCash
		}
	}
	for _, w := range l.CardWords {
		if strings.Contains(text, w) {
			return PaymentCard
		}
	}
	return PaymentUnknown
}
