package model

// Currency describes how monetary amounts are rendered for a user.
// Position is "before" or "after" the amount.
type Currency struct {
	Symbol   string `json:"symbol"`
	Position string `json:"position"`
}
