package services

import (
	"os"
	"sort"
	"sync"

	json "github.com/goccy/go-json"

	"daddeck/internal/migration/interfaces"
	"daddeck/internal/structures"
)

type WishlistServiceInterface interface {
	Add(cardID string) bool
	Remove(cardID string) bool
	Has(cardID string) bool
	List() []string
	Len() int
	Save() error
	Load() error
}

// WishlistService tracks wanted card ids. The set is persisted to its own
// compressed snapshot file, separate from the collection.
type WishlistService struct {
	mu         sync.RWMutex
	ids        map[string]struct{}
	path       string
	compressor interfaces.CompressorInterface
}

func NewWishlistService(conf *structures.Config, compressor interfaces.CompressorInterface) WishlistServiceInterface {
	return &WishlistService{
		ids:        make(map[string]struct{}),
		path:       conf.Persistence.WishlistPath,
		compressor: compressor,
	}
}

func (ws *WishlistService) Add(cardID string) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if _, ok := ws.ids[cardID]; ok {
		return false
	}
	ws.ids[cardID] = struct{}{}
	return true
}

func (ws *WishlistService) Remove(cardID string) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if _, ok := ws.ids[cardID]; !ok {
		return false
	}
	delete(ws.ids, cardID)
	return true
}

func (ws *WishlistService) Has(cardID string) bool {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	_, ok := ws.ids[cardID]
	return ok
}

func (ws *WishlistService) List() []string {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	out := make([]string, 0, len(ws.ids))
	for id := range ws.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (ws *WishlistService) Len() int {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return len(ws.ids)
}

func (ws *WishlistService) Save() error {
	jsonData, err := json.Marshal(ws.List())
	if err != nil {
		return err
	}
	data, err := ws.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := ws.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, ws.path)
}

// Load replaces the set with the persisted one. A missing or unreadable
// file leaves the wishlist empty rather than failing startup.
func (ws *WishlistService) Load() error {
	data, err := os.ReadFile(ws.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	jsonData, err := ws.compressor.Decompress(data)
	if err != nil {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(jsonData, &ids); err != nil {
		return nil
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		ws.ids[id] = struct{}{}
	}
	return nil
}
