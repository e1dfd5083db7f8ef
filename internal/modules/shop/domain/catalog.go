package domain

import "fmt"

type Category string

const (
	CategoryOutfit Category = "outfit"
	CategoryHat    Category = "hat"
	CategoryTool   Category = "tool"
	CategoryHouse  Category = "house"
)

type RequirementMetric string

const (
	RequireNone    RequirementMetric = "none"
	RequireHouses  RequirementMetric = "houses"
	RequireStreak  RequirementMetric = "streak"
	RequireCoins   RequirementMetric = "coins"
	RequireSeconds RequirementMetric = "time"
)

// Requirement gates an item behind a progression metric; zero value means
// available from the start.
type Requirement struct {
	Metric RequirementMetric
	Target int
}

// PlayerMetrics is the slice of the ledger the shop gates on.
type PlayerMetrics struct {
	HousesBuilt       int
	StreakDays        int
	Coins             int
	TotalFocusSeconds int
}

func (r Requirement) Describe() string {
	switch r.Metric {
	case RequireHouses:
		return fmt.Sprintf("build %d houses", r.Target)
	case RequireStreak:
		return fmt.Sprintf("reach a %d day streak", r.Target)
	case RequireCoins:
		return fmt.Sprintf("earn %d coins", r.Target)
	case RequireSeconds:
		return fmt.Sprintf("focus for %d hours", r.Target/3600)
	default:
		return ""
	}
}

func (r Requirement) Met(m PlayerMetrics) bool {
	switch r.Metric {
	case RequireHouses:
		return m.HousesBuilt >= r.Target
	case RequireStreak:
		return m.StreakDays >= r.Target
	case RequireCoins:
		return m.Coins >= r.Target
	case RequireSeconds:
		return m.TotalFocusSeconds >= r.Target
	default:
		return true
	}
}

type Item struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Price       int
	Effect      string
	Requirement Requirement
}

// Catalog is the static cosmetic inventory. Prices and unlock gates follow
// the shipped shop data; items only decorate the scene and never feed back
// into reward rules.
func Catalog() []Item {
	return []Item{
		{ID: "casual", Name: "Casual Wear", Description: "Comfortable building attire", Category: CategoryOutfit, Price: 50},
		{ID: "professional", Name: "Professional Suit", Description: "Dress for success", Category: CategoryOutfit, Price: 100,
			Requirement: Requirement{Metric: RequireHouses, Target: 5}},
		{ID: "superhero", Name: "Super Builder", Description: "Build at super speed!", Category: CategoryOutfit, Price: 500,
			Requirement: Requirement{Metric: RequireStreak, Target: 30}},

		{ID: "cowboy", Name: "Cowboy Hat", Description: "Yeehaw! Build em up!", Category: CategoryHat, Price: 75,
			Requirement: Requirement{Metric: RequireHouses, Target: 3}},
		{ID: "viking", Name: "Viking Helmet", Description: "Conquer your focus!", Category: CategoryHat, Price: 150,
			Requirement: Requirement{Metric: RequireHouses, Target: 20}},
		{ID: "crown", Name: "Builder Crown", Description: "For the master builder", Category: CategoryHat, Price: 300,
			Requirement: Requirement{Metric: RequireStreak, Target: 14}},

		{ID: "golden_hammer", Name: "Golden Hammer", Description: "A prestigious building tool", Category: CategoryTool, Price: 200,
			Effect: "+10% coins from sessions", Requirement: Requirement{Metric: RequireCoins, Target: 100}},
		{ID: "power_drill", Name: "Power Drill", Description: "Builds houses faster", Category: CategoryTool, Price: 150,
			Effect: "Visual building speed +50%", Requirement: Requirement{Metric: RequireHouses, Target: 10}},
		{ID: "blueprint", Name: "Magic Blueprint", Description: "Never lose progress", Category: CategoryTool, Price: 1000,
			Effect: "Prevents house demolition once per day", Requirement: Requirement{Metric: RequireSeconds, Target: 36000}},

		{ID: "mansion", Name: "Luxury Mansion", Description: "The ultimate building project", Category: CategoryHouse, Price: 1000,
			Requirement: Requirement{Metric: RequireHouses, Target: 15}},
		{ID: "castle", Name: "Medieval Castle", Description: "A fortress of focus", Category: CategoryHouse, Price: 2000,
			Requirement: Requirement{Metric: RequireStreak, Target: 50}},
		{ID: "skyscraper", Name: "Modern Skyscraper", Description: "Reach for the sky!", Category: CategoryHouse, Price: 5000,
			Requirement: Requirement{Metric: RequireHouses, Target: 50}},
	}
}

func FindItem(itemID string) (Item, bool) {
	for _, item := range Catalog() {
		if item.ID == itemID {
			return item, true
		}
	}
	return Item{}, false
}
