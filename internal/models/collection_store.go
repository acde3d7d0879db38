package models

import "sync"

// CollectionStore guards the in-memory collection. Callers only ever see
// deep copies; the stored collection is never aliased outside the store.
// Every mutation bumps the revision, which cache keys embed so stale
// cached views die with the revision instead of their TTL.
type CollectionStore struct {
	mu  sync.RWMutex
	c   *Collection
	rev uint64
}

func NewCollectionStore() *CollectionStore {
	return &CollectionStore{c: NewCollection()}
}

// Snapshot returns a deep copy of the current collection.
func (s *CollectionStore) Snapshot() *Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.Clone()
}

// Revision returns the current mutation counter.
func (s *CollectionStore) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rev
}

// Replace swaps the whole collection for the given one.
func (s *CollectionStore) Replace(c *Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = c.Clone()
	s.rev++
}

// Merge folds an imported collection into the stored one. Packs are
// deduplicated by id with the imported pack winning on collision; new
// packs are appended in import order. UniqueCards only grows, and the
// derived rarityCounts tally is rebuilt from the merged card set.
// Returns the number of packs added or replaced.
func (s *CollectionStore) Merge(in *Collection) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]int, len(s.c.Packs))
	for i, p := range s.c.Packs {
		byID[p.ID] = i
	}

	merged := 0
	for _, p := range in.Packs {
		if i, ok := byID[p.ID]; ok {
			s.c.Packs[i] = p.Clone()
		} else {
			s.c.Packs = append(s.c.Packs, p.Clone())
		}
		merged++
	}

	if in.Metadata != nil {
		s.c.AddUniqueCards(in.Metadata.UniqueCards)
	}
	for _, p := range s.c.Packs {
		for _, card := range p.Cards {
			s.c.AddUniqueCards([]string{card.ID})
		}
	}

	if in.Metadata != nil && in.Metadata.TotalPacksOpened > s.c.Metadata.TotalPacksOpened {
		s.c.Metadata.TotalPacksOpened = in.Metadata.TotalPacksOpened
	}

	s.recountPulls()
	s.c.RecomputeRarityCounts()
	s.rev++
	return merged
}

// AddPacks appends freshly opened packs and updates the metadata counters.
func (s *CollectionStore) AddPacks(packs []*Pack) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range packs {
		cp := p.Clone()
		s.c.Packs = append(s.c.Packs, cp)
		s.c.Metadata.TotalPacksOpened++
		for _, card := range cp.Cards {
			s.c.AddUniqueCards([]string{card.ID})
			s.c.Metadata.RarityCounts[card.Rarity]++
			if card.Rarity.Rank() >= RarityRare.Rank() {
				s.c.Metadata.RarePulls++
			}
			if card.Holo {
				s.c.Metadata.HoloPulls++
			}
		}
	}
	s.rev++
}

// RemoveCards removes the first occurrence of each given card id. Packs
// left empty are dropped, keeping the cards-non-empty invariant. Returns
// false without modifying anything when some id is not owned.
func (s *CollectionStore) RemoveCards(ids []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	remove := make(map[string]int, len(ids))
	for _, id := range ids {
		remove[id]++
	}

	owned := make(map[string]int)
	for _, p := range s.c.Packs {
		for _, card := range p.Cards {
			owned[card.ID]++
		}
	}
	for id, n := range remove {
		if owned[id] < n {
			return false
		}
	}

	kept := s.c.Packs[:0]
	for _, p := range s.c.Packs {
		cards := p.Cards[:0]
		for _, card := range p.Cards {
			if remove[card.ID] > 0 {
				remove[card.ID]--
				continue
			}
			cards = append(cards, card)
		}
		p.Cards = cards
		if len(p.Cards) > 0 {
			kept = append(kept, p)
		}
	}
	s.c.Packs = kept

	s.recountPulls()
	s.c.RecomputeRarityCounts()
	s.rev++
	return true
}

// Owns reports whether every given card id is currently in the collection,
// counting duplicates.
func (s *CollectionStore) Owns(ids []string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	need := make(map[string]int, len(ids))
	for _, id := range ids {
		need[id]++
	}
	have := make(map[string]int)
	for _, p := range s.c.Packs {
		for _, card := range p.Cards {
			have[card.ID]++
		}
	}
	for id, n := range need {
		if have[id] < n {
			return false
		}
	}
	return true
}

func (s *CollectionStore) PackCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.c.Packs)
}

func (s *CollectionStore) CardCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c.CardCount()
}

func (s *CollectionStore) UniqueCardCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.c.Metadata.UniqueCards)
}

// recountPulls rebuilds the rare/holo pull counters from the current card
// set. Must be called under s.mu.Lock().
func (s *CollectionStore) recountPulls() {
	rare, holo := 0, 0
	for _, p := range s.c.Packs {
		for _, card := range p.Cards {
			if card.Rarity.Rank() >= RarityRare.Rank() {
				rare++
			}
			if card.Holo {
				holo++
			}
		}
	}
	s.c.Metadata.RarePulls = rare
	s.c.Metadata.HoloPulls = holo
}
