package domain

import "encoding/json"

const SchemaVersion = 1

// GameState is the cosmetic progression record. The reward core never reads
// it; fields the Go port does not render (completed house placements, builder
// customization) are carried as opaque JSON so nothing is lost on rewrite.
type GameState struct {
	PurchasedItems  map[string][]string `json:"purchased_items"`
	CurrentHouse    string              `json:"current_house"`
	CompletedHouses []json.RawMessage   `json:"completed_houses,omitempty"`
	Customization   json.RawMessage     `json:"builder_customization,omitempty"`
}

func NewGameState() GameState {
	return GameState{
		PurchasedItems: map[string][]string{},
		CurrentHouse:   "cottage",
	}
}

func (g GameState) Owns(category Category, itemID string) bool {
	for _, owned := range g.PurchasedItems[string(category)] {
		if owned == itemID {
			return true
		}
	}
	return false
}

func (g *GameState) AddPurchase(category Category, itemID string) {
	if g.PurchasedItems == nil {
		g.PurchasedItems = map[string][]string{}
	}
	g.PurchasedItems[string(category)] = append(g.PurchasedItems[string(category)], itemID)
	if category == CategoryHouse {
		g.CurrentHouse = itemID
	}
}
