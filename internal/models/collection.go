package models

import "time"

type Metadata struct {
	TotalPacksOpened int            `json:"totalPacksOpened"`
	UniqueCards      []string       `json:"uniqueCards"`
	RarePulls        int            `json:"rarePulls"`
	HoloPulls        int            `json:"holoPulls"`
	RarityCounts     map[Rarity]int `json:"rarityCounts"`
	Created          time.Time      `json:"created"`
}

// Collection is the root persisted entity. Extra top-level keys are
// deliberately absent: an exported file contains exactly packs + metadata.
type Collection struct {
	Packs    []*Pack   `json:"packs"`
	Metadata *Metadata `json:"metadata"`
}

// NewCollection returns an empty collection at the current schema shape.
func NewCollection() *Collection {
	return &Collection{
		Packs: []*Pack{},
		Metadata: &Metadata{
			UniqueCards:  []string{},
			RarityCounts: ZeroRarityCounts(),
			Created:      time.Now().UTC(),
		},
	}
}

// ZeroRarityCounts returns a tally with every known rarity present at zero.
func ZeroRarityCounts() map[Rarity]int {
	counts := make(map[Rarity]int, len(Rarities))
	for _, r := range Rarities {
		counts[r] = 0
	}
	return counts
}

func (c *Collection) Clone() *Collection {
	cp := &Collection{
		Packs: make([]*Pack, len(c.Packs)),
	}
	for i, p := range c.Packs {
		cp.Packs[i] = p.Clone()
	}
	if c.Metadata != nil {
		m := *c.Metadata
		m.UniqueCards = append([]string{}, c.Metadata.UniqueCards...)
		m.RarityCounts = make(map[Rarity]int, len(c.Metadata.RarityCounts))
		for k, v := range c.Metadata.RarityCounts {
			m.RarityCounts[k] = v
		}
		cp.Metadata = &m
	}
	return cp
}

// RecomputeRarityCounts rebuilds the derived tally from the actual cards.
// rarityCounts is derived, never independently authoritative.
func (c *Collection) RecomputeRarityCounts() {
	counts := ZeroRarityCounts()
	for _, p := range c.Packs {
		for _, card := range p.Cards {
			counts[card.Rarity]++
		}
	}
	c.Metadata.RarityCounts = counts
}

// hasUnique reports whether id is already in the unique card set.
func (c *Collection) hasUnique(id string) bool {
	for _, u := range c.Metadata.UniqueCards {
		if u == id {
			return true
		}
	}
	return false
}

// AddUniqueCards grows the unique set with any ids not yet observed.
// The set never shrinks.
func (c *Collection) AddUniqueCards(ids []string) {
	for _, id := range ids {
		if !c.hasUnique(id) {
			c.Metadata.UniqueCards = append(c.Metadata.UniqueCards, id)
		}
	}
}

func (c *Collection) CardCount() int {
	n := 0
	for _, p := range c.Packs {
		n += len(p.Cards)
	}
	return n
}
