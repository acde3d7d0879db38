package models

import "time"

type Pack struct {
	ID         string    `json:"id"`
	Cards      []*Card   `json:"cards"`
	Opened     time.Time `json:"opened"`
	BestRarity Rarity    `json:"bestRarity"`
	Design     string    `json:"design"`
}

// BestRarityOf returns the highest rarity among the given cards.
func BestRarityOf(cards []*Card) Rarity {
	best := RarityCommon
	for _, c := range cards {
		if c.Rarity.Rank() > best.Rank() {
			best = c.Rarity
		}
	}
	return best
}

func (p *Pack) Clone() *Pack {
	cp := *p
	cp.Cards = make([]*Card, len(p.Cards))
	for i, c := range p.Cards {
		cp.Cards[i] = c.Clone()
	}
	return &cp
}
