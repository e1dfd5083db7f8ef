package dto

type ItemOutput struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Price           int
	Effect          string
	RequirementText string
	Unlocked        bool
	Owned           bool
}

type PurchaseInput struct {
	ItemID string
}

// PurchaseOutput reports the result; an unaffordable purchase is a normal
// declined outcome, not an error.
type PurchaseOutput struct {
	Purchased bool
	ItemID    string
	Price     int
	CoinsLeft int
}

type GameStateOutput struct {
	CurrentHouse   string
	PurchasedItems map[string][]string
}
