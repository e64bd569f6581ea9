package nlp

// Intent is the single action category resolved for an utterance.
type Intent string

const (
	IntentDecreaseStock Intent = "decrease_stock"
	IntentIncreaseStock Intent = "increase_stock"
	IntentStockQuery    Intent = "stock_query"
	IntentSalesReport   Intent = "sales_report"
	IntentProductList   Intent = "product_list"
	IntentCreateBill    Intent = "create_bill"
	IntentUnrecognized  Intent = "unrecognized"
)

// Payment methods recorded on transactions.
const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentUnknown = "unknown"
)

// ProductAlias maps a spoken token (Urdu or Latin) to the canonical English
// product name it is stored under.
type ProductAlias struct {
	Alias     string
	Canonical string
}

// Lexicon holds the fixed vocabulary tables used for numeral parsing,
// entity extraction and intent classification. It is built once at startup
// and never mutated, so it is safe to share across requests.
type Lexicon struct {
	NumberWords    map[string]int
	ScaleWords     map[string]int
	ProductAliases []ProductAlias
	CanonicalNames []string
	Triggers       map[Intent][]string
	CashWords      []string
	CardWords      []string
}

// DefaultLexicon returns the built-in Urdu/English vocabulary.
func DefaultLexicon() *Lexicon {
	aliases := []ProductAlias{
		{"سیب", "Apple"},
		{"seb", "Apple"},
		{"آم", "Mango"},
		{"aam", "Mango"},
		{"کیلا", "Banana"},
		{"کیلے", "Banana"},
		{"kela", "Banana"},
		{"دودھ", "Milk"},
		{"doodh", "Milk"},
		{"انڈے", "Eggs"},
		{"انڈا", "Eggs"},
		{"anday", "Eggs"},
		{"چینی", "Sugar"},
		{"cheeni", "Sugar"},
		{"چاول", "Rice"},
		{"chawal", "Rice"},
		{"آٹا", "Flour"},
		{"atta", "Flour"},
		{"تیل", "Oil"},
		{"صابن", "Soap"},
		{"sabun", "Soap"},
	}

	canonical := make([]string, 0, len(aliases))
	seen := make(map[string]bool)
	for _, a := range aliases {
		if !seen[a.Canonical] {
			seen[a.Canonical] = true
			canonical = append(canonical, a.Canonical)
		}
	}

	return &Lexicon{
		NumberWords: map[string]int{
			"صفر": 0, "ایک": 1, "دو": 2, "تین": 3, "چار": 4, "پانچ": 5,
			"چھ": 6, "سات": 7, "آٹھ": 8, "نو": 9, "دس": 10,
			"گیارہ": 11, "بارہ": 12, "تیرا": 13, "چودہ": 14, "پندرہ": 15,
			"سولہ": 16, "سترہ": 17, "اٹھارہ": 18, "انیس": 19,
			"بیس": 20, "تیس": 30, "چالیس": 40, "پچاس": 50, "ساٹھ": 60,
			"ستر": 70, "اسی": 80, "نوے": 90,
		},
		ScaleWords: map[string]int{
			"سو": 100, "ہزار": 1000, "لاکھ": 100000,
		},
		ProductAliases: aliases,
		CanonicalNames: canonical,
		Triggers: map[Intent][]string{
			IntentDecreaseStock: {"گھٹا", "کم کر", "نکال", "بیچ دیا", "گھٹائیں", "kam kar"},
			IntentIncreaseStock: {"بڑھا", "اضافہ", "شامل کر", "جمع کر", "barha"},
			IntentStockQuery:    {"اسٹاک", "سٹاک", "کتنا", "کتنے", "stock"},
			IntentSalesReport:   {"خریداری", "سیلز", "فروخت", "رپورٹ", "sales"},
			IntentProductList:   {"پروڈکٹ"},
			IntentCreateBill:    {"بل"},
		},
		CashWords: []string{"کیَش", "کیش", "نقد", "cash"},
		CardWords: []string{"کارڈ", "کریڈٹ", "card"},
	}
}
