package pos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"voicepos/metrics"
	"voicepos/models"
	"voicepos/nlp"
	"voicepos/store"
	"voicepos/utils"
)

const (
	billDescription    = "Voice-generated bill"
	fallbackBillAmount = 100.0
)

// Store is the persistence surface the dispatcher needs.
type Store interface {
	GetItemByName(ctx context.Context, name string) (*models.InventoryItem, error)
	ListItems(ctx context.Context) ([]models.InventoryItem, error)
	AdjustStock(ctx context.Context, name string, delta int) (*models.InventoryItem, error)
	InsertTransaction(ctx context.Context, description string, amount float64, paymentMethod string) (*models.Transaction, error)
	ListTransactionsSince(ctx context.Context, since time.Time) ([]models.Transaction, error)
}

// Dispatcher classifies a transcript and executes the resolved action
// against the store. Each call is stateless; nothing is carried between
// requests.
type Dispatcher struct {
	store   Store
	lex     *nlp.Lexicon
	metrics *metrics.Metrics
	now     func() time.Time
}

// New creates a dispatcher.
func New(st Store, lex *nlp.Lexicon, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{store: st, lex: lex, metrics: m, now: time.Now}
}

// HandleVoiceCommand runs the full pipeline for one transcript: extraction,
// classification and the store action for the winning intent. Errors are
// persistence failures only; a missing product or an unrecognized command
// is answered in the response message instead.
func (d *Dispatcher) HandleVoiceCommand(ctx context.Context, transcript string) (*models.VoiceCommandResponse, error) {
	text := strings.ToLower(transcript)
	entities := d.lex.Extract(text)
	intent := d.lex.Classify(text, entities)
	d.metrics.Commands.WithLabelValues(string(intent)).Inc()

	resp := &models.VoiceCommandResponse{Transcription: text}

	switch intent {
	case nlp.IntentDecreaseStock:
		return d.adjustStock(ctx, resp, entities, -entities.Quantity)
	case nlp.IntentIncreaseStock:
		return d.adjustStock(ctx, resp, entities, entities.Quantity)
	case nlp.IntentStockQuery:
		return d.stockQuery(ctx, resp, entities)
	case nlp.IntentSalesReport:
		report, err := d.DailySalesReport(ctx)
		if err != nil {
			d.metrics.Errors.WithLabelValues("sales_report").Inc()
			return nil, err
		}
		resp.Message = report
		return resp, nil
	case nlp.IntentProductList:
		resp.Message = "پروڈکٹ لسٹ دکھا رہا ہوں (dummy data)"
		return resp, nil
	case nlp.IntentCreateBill:
		return d.createBill(ctx, resp, entities)
	}

	resp.Message = fmt.Sprintf("کمانڈ سمجھ نہیں آئی: %s", text)
	return resp, nil
}

func (d *Dispatcher) adjustStock(ctx context.Context, resp *models.VoiceCommandResponse, e nlp.Entities, delta int) (*models.VoiceCommandResponse, error) {
	item, err := d.store.AdjustStock(ctx, e.Product, delta)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			resp.Product = utils.StringPtr(e.Product)
			resp.Message = fmt.Sprintf("پروڈکٹ نہیں ملی: %s", e.Product)
			return resp, nil
		}
		d.metrics.Errors.WithLabelValues("adjust_stock").Inc()
		return nil, err
	}

	resp.Product = utils.StringPtr(item.ProductName)
	resp.Quantity = utils.IntPtr(e.Quantity)
	resp.NewStockLevel = utils.IntPtr(item.StockLevel)
	if delta < 0 {
		resp.Message = fmt.Sprintf("%s کا اسٹاک %d کم کر دیا گیا، نیا اسٹاک: %d", item.ProductName, e.Quantity, item.StockLevel)
	} else {
		resp.Message = fmt.Sprintf("%s کا اسٹاک %d بڑھا دیا گیا، نیا اسٹاک: %d", item.ProductName, e.Quantity, item.StockLevel)
	}
	return resp, nil
}

func (d *Dispatcher) stockQuery(ctx context.Context, resp *models.VoiceCommandResponse, e nlp.Entities) (*models.VoiceCommandResponse, error) {
	if e.Product != "" {
		item, err := d.store.GetItemByName(ctx, e.Product)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				resp.Product = utils.StringPtr(e.Product)
				resp.Message = fmt.Sprintf("پروڈکٹ نہیں ملی: %s", e.Product)
				return resp, nil
			}
			d.metrics.Errors.WithLabelValues("stock_query").Inc()
			return nil, err
		}
		resp.Product = utils.StringPtr(item.ProductName)
		resp.NewStockLevel = utils.IntPtr(item.StockLevel)
		resp.Message = fmt.Sprintf("%s کا موجودہ اسٹاک: %d", item.ProductName, item.StockLevel)
		return resp, nil
	}

	items, err := d.store.ListItems(ctx)
	if err != nil {
		d.metrics.Errors.WithLabelValues("stock_query").Inc()
		return nil, err
	}
	if len(items) == 0 {
		resp.Message = "اسٹاک میں کوئی آئٹم موجود نہیں"
		return resp, nil
	}

	var sb strings.Builder
	sb.WriteString("موجودہ اسٹاک:")
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("\n%s: %d", item.ProductName, item.StockLevel))
	}
	resp.Message = sb.String()
	return resp, nil
}

func (d *Dispatcher) createBill(ctx context.Context, resp *models.VoiceCommandResponse, e nlp.Entities) (*models.VoiceCommandResponse, error) {
	amount := e.Amount
	if amount == 0 {
		// A misheard or absent numeral must not create a zero-value bill.
		amount = fallbackBillAmount
	}

	tx, err := d.store.InsertTransaction(ctx, billDescription, amount, e.PaymentMethod)
	if err != nil {
		d.metrics.Errors.WithLabelValues("create_bill").Inc()
		return nil, err
	}

	resp.Message = fmt.Sprintf("بل بنایا گیا: %s، رقم %s، ادائیگی: %s",
		tx.Description, utils.FormatAmount(tx.TotalAmount), tx.PaymentMethod)
	return resp, nil
}

// DailySalesReport aggregates every transaction created since local
// midnight. It recomputes on each call and never mutates state. The
// snapshot is not transactionally consistent with concurrent bill
// creation; a report may miss a bill committed moments earlier.
func (d *Dispatcher) DailySalesReport(ctx context.Context) (*models.SalesReport, error) {
	now := d.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	txs, err := d.store.ListTransactionsSince(ctx, midnight)
	if err != nil {
		return nil, err
	}

	report := &models.SalesReport{
		Date:              midnight.Format("2006-01-02"),
		TotalTransactions: len(txs),
		PaymentBreakdown:  make(map[string]float64),
		Transactions:      make([]models.TransactionRecord, 0, len(txs)),
	}
	for _, tx := range txs {
		method := tx.PaymentMethod
		if method == "" {
			method = nlp.PaymentUnknown
		}
		report.TotalSales += tx.TotalAmount
		report.PaymentBreakdown[method] += tx.TotalAmount
		report.Transactions = append(report.Transactions, models.TransactionRecord{
			ID:            tx.ID,
			Description:   tx.Description,
			Amount:        tx.TotalAmount,
			PaymentMethod: tx.PaymentMethod,
			CreatedAt:     tx.CreatedAt,
		})
	}
	return report, nil
}
