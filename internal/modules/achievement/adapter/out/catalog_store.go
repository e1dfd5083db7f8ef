package out

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"focusforge/internal/modules/achievement/domain"
	achievementout "focusforge/internal/modules/achievement/port/out"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogDoc struct {
	Achievements []definitionDoc `yaml:"achievements"`
}

type definitionDoc struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Description   string  `yaml:"description"`
	Category      string  `yaml:"category"`
	Rarity        string  `yaml:"rarity"`
	CoinReward    int     `yaml:"coin_reward"`
	SpecialReward string  `yaml:"special_reward"`
	Rule          ruleDoc `yaml:"rule"`
}

type ruleDoc struct {
	Metric string `yaml:"metric"`
	Target int    `yaml:"target"`
}

// EmbeddedCatalogStore parses the compiled-in achievement catalog. Order in
// the YAML document is the evaluation order.
type EmbeddedCatalogStore struct{}

func NewEmbeddedCatalogStore() achievementout.CatalogStore {
	return EmbeddedCatalogStore{}
}

func (EmbeddedCatalogStore) Definitions(context.Context) ([]domain.Definition, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(catalogYAML, &doc); err != nil {
		return nil, fmt.Errorf("decode achievement catalog: %w", err)
	}
	defs := make([]domain.Definition, 0, len(doc.Achievements))
	seen := map[string]bool{}
	for _, d := range doc.Achievements {
		def := domain.Definition{
			ID:            d.ID,
			Name:          d.Name,
			Description:   d.Description,
			Category:      d.Category,
			Rarity:        d.Rarity,
			CoinReward:    d.CoinReward,
			SpecialReward: d.SpecialReward,
			Rule:          domain.Rule{Metric: domain.Metric(d.Rule.Metric), Target: d.Rule.Target},
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("achievement catalog: %w", err)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("achievement catalog: duplicate id %s", def.ID)
		}
		seen[def.ID] = true
		defs = append(defs, def)
	}
	return defs, nil
}
