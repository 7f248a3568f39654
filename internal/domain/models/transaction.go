package models

type Operation string

const (
	OperationDeposit  Operation = "deposit"
	OperationWithdraw Operation = "withdraw"
)

// Receipt describes a mutation that has been applied. It is not stored.
type Receipt struct {
	TransactionID string    `json:"transaction_id"`
	AccountID     string    `json:"account_id"`
	Operation     Operation `json:"operation"`
	Amount        int64     `json:"amount"`
	NewBalance    int64     `json:"new_balance"`
	Currency      string    `json:"currency"`
}
