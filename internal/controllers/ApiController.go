package controllers

import (
	"io"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"daddeck/internal/catalog"
	"daddeck/internal/migration"
	"daddeck/internal/models"
	"daddeck/internal/providers"
	"daddeck/internal/services"
)

const maxRequestBodySize = 5 << 20 // 5 MB, import files included

type ApiController struct {
	logger     providers.Logger
	collection services.CollectionServiceInterface
	wishlist   services.WishlistServiceInterface
	facade     *migration.Facade
	catalog    *catalog.Catalog
	generator  *catalog.Generator
	events     *catalog.EventSchedule
	cache      providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, collection services.CollectionServiceInterface, wishlist services.WishlistServiceInterface, facade *migration.Facade, cat *catalog.Catalog, generator *catalog.Generator, events *catalog.EventSchedule, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:     logger,
		collection: collection,
		wishlist:   wishlist,
		facade:     facade,
		catalog:    cat,
		generator:  generator,
		events:     events,
		cache:      cache,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

type cardListResponse struct {
	Cards      []*models.Card    `json:"cards"`
	Pagination models.Pagination `json:"pagination"`
}

func (ac *ApiController) ListCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.ListFilter{
		Rarity:   q.Get("rarity"),
		Type:     q.Get("type"),
		Series:   cast.ToInt(q.Get("series")),
		Search:   q.Get("search"),
		Page:     cast.ToInt(q.Get("page")),
		PageSize: cast.ToInt(q.Get("pageSize")),
	}

	ac.serveFromCacheOrCompute(w, "cards:"+q.Encode(), func() (any, error) {
		cards, pagination := ac.catalog.List(filter)
		return &cardListResponse{Cards: cards, Pagination: pagination}, nil
	})
}

func (ac *ApiController) GetCard(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	card, ok := ac.catalog.Get(id)
	if !ok {
		http.Error(w, "Card Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

type randomCardsBody struct {
	Exclude []string `json:"exclude"`
}

func (ac *ApiController) RandomCards(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var body randomCardsBody
	_ = json.NewDecoder(r.Body).Decode(&body) // empty body means no exclusions

	q := r.URL.Query()
	cards := ac.generator.Random(catalog.RandomRequest{
		Count:   cast.ToInt(q.Get("count")),
		Rarity:  q.Get("rarity"),
		Type:    q.Get("type"),
		Exclude: body.Exclude,
	})
	writeJSON(w, http.StatusOK, map[string]any{"cards": cards})
}

func (ac *ApiController) GeneratePacks(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var req catalog.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	packs, err := ac.generator.Generate(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ac.collection.AddPacks(packs)
	ac.logger.Infof(providers.TypePost, "Opened %d %s pack(s)", len(packs), req.PackType)

	writeJSON(w, http.StatusCreated, map[string]any{"packs": packs})
}

func (ac *ApiController) GetCollection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := services.ViewQuery{
		Rarity:    q.Get("rarity"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      cast.ToInt(q.Get("page")),
		PageSize:  cast.ToInt(q.Get("pageSize")),
	}

	// The cache key embeds the store revision, so views cached before a
	// mutation are never served after it.
	key := "collection:" + strconv.FormatUint(ac.collection.Revision(), 10) + ":" + q.Encode()
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return ac.collection.View(query), nil
	})
}

func (ac *ApiController) ExportCollection(w http.ResponseWriter, r *http.Request) {
	data, err := ac.facade.ExportCollection(ac.collection.Snapshot())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="daddeck-collection.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type importResponse struct {
	Success  bool   `json:"success"`
	Imported int    `json:"imported"`
	Mode     string `json:"mode,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ImportCollection accepts an exported file (or a versioned snapshot) and
// either replaces the collection or merges into it. Merge/replace is a
// caller-level policy; the migration facade only validates and migrates.
func (ac *ApiController) ImportCollection(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "replace"
	}
	if mode != "replace" && mode != "merge" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result := ac.facade.ImportCollection(raw)
	if !result.Success {
		writeJSON(w, http.StatusBadRequest, &importResponse{Success: false, Error: result.Error})
		return
	}

	imported := result.Imported
	if mode == "merge" {
		imported = ac.collection.Merge(result.Collection)
	} else {
		ac.collection.Replace(result.Collection)
	}
	ac.logger.Infof(providers.TypePost, "Imported %d pack(s) in %s mode", imported, mode)

	writeJSON(w, http.StatusOK, &importResponse{Success: true, Imported: imported, Mode: mode})
}

// ListEvents is uncached: statuses flip with the clock and the schedule
// is a handful of entries.
func (ac *ApiController) ListEvents(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	writeJSON(w, http.StatusOK, map[string]any{"events": ac.events.List(status, time.Now().UTC())})
}

func (ac *ApiController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	event, ok := ac.events.Get(id, time.Now().UTC())
	if !ok {
		http.Error(w, "Event Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (ac *ApiController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"cards": ac.wishlist.List()})
}

type wishlistBody struct {
	CardID string `json:"cardId"`
}

func (ac *ApiController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var body wishlistBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.CardID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if _, ok := ac.catalog.Get(body.CardID); !ok {
		http.Error(w, "Card Not Found", http.StatusNotFound)
		return
	}

	added := ac.wishlist.Add(body.CardID)
	writeJSON(w, http.StatusCreated, map[string]any{"added": added})
}

func (ac *ApiController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	removed := ac.wishlist.Remove(id)
	if !removed {
		http.Error(w, "Card Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"removed": true})
}
