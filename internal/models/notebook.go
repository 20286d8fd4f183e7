package models

// BankCategory classifies a reward-ledger entry
type BankCategory string

const (
	CategoryReward    BankCategory = "reward"
	CategoryRedPacket BankCategory = "red-packet"
	CategoryGift      BankCategory = "gift"
	CategoryOther     BankCategory = "other"
)

// ValidBankCategory reports whether s names a known ledger category
func ValidBankCategory(s string) bool {
	switch BankCategory(s) {
	case CategoryReward, CategoryRedPacket, CategoryGift, CategoryOther:
		return true
	}
	return false
}

// BankEntry is one line of the reward ledger
type BankEntry struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Amount      float64      `json:"amount"`
	Description string       `json:"description"`
	Category    BankCategory `json:"category"`
}

// ExamRecord is one logged exam result
type ExamRecord struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Subject  string  `json:"subject"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
	Note     string  `json:"note,omitempty"`
}

// ParentScore is one parent's daily rating; nil means not yet rated
type ParentScore struct {
	Accuracy *int `json:"accuracy"`
	Attitude *int `json:"attitude"`
}

// ParentFeedback is the per-date scorecard, upserted keyed by date.
// A nil parent score means that parent has not rated the day.
type ParentFeedback struct {
	Date string       `json:"date"`
	Dad  *ParentScore `json:"dad,omitempty"`
	Mom  *ParentScore `json:"mom,omitempty"`
}
