package models

// Transaction is one wallet transfer as shown to the user.
type Transaction struct {
	Hash         string `json:"hash"`
	Type         string `json:"type"`
	Amount       string `json:"amount"`
	Counterparty string `json:"to"`
	Timestamp    string `json:"timestamp,omitempty"`
	RawValue     string `json:"value,omitempty"`
}

// TransactionSet is what a transaction source yields for one wallet: the newest
// transactions first, plus the average gas fee already rendered in ETH.
type TransactionSet struct {
	Transactions []Transaction
	AvgGasFee    string
}

// AnalysisResponse is the whale analyzer result.
type AnalysisResponse struct {
	Wallet       string        `json:"wallet"`
	Transactions []Transaction `json:"transactions"`
	Patterns     []string      `json:"patterns"`
	Insights     Insights      `json:"insights"`
	AvgGasFee    string        `json:"avgGasFee"`

	// Mock is set when the result was built from fixture data.
	Mock bool `json:"-"`
}
