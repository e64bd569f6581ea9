package models

import "time"

// --- Core Models ---

// InventoryItem is a single stocked product. Rows are provisioned out of
// band; the voice pipeline only reads them and moves stock_level up or down.
type InventoryItem struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	StockLevel  int       `json:"stock_level"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Transaction is a bill created from a voice command. It is written once
// and never updated afterwards.
type Transaction struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// --- API Request/Response Structs ---

// TransactionRecord is the audit view of a transaction inside a sales report.
type TransactionRecord struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// SalesReport aggregates all transactions created since local midnight.
type SalesReport struct {
	Date              string              `json:"date"`
	TotalTransactions int                 `json:"total_transactions"`
	TotalSales        float64             `json:"total_sales"`
	PaymentBreakdown  map[string]float64  `json:"payment_breakdown"`
	Transactions      []TransactionRecord `json:"transactions"`
}

// VoiceCommandResponse is the payload returned for every voice command.
// Message is either a human-readable string or a *SalesReport.
type VoiceCommandResponse struct {
	Transcription string      `json:"transcription"`
	Message       interface{} `json:"message"`
	Product       *string     `json:"product,omitempty"`
	Quantity      *int        `json:"quantity,omitempty"`
	NewStockLevel *int        `json:"new_stock_level,omitempty"`
}
