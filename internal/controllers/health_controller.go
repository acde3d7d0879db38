package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"daddeck/internal/services"
)

type HealthController struct {
	collection services.CollectionServiceInterface
	wishlist   services.WishlistServiceInterface
	startTime  time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Packs         int     `json:"packs"`
	Cards         int     `json:"cards"`
	UniqueCards   int     `json:"unique_cards"`
	WishlistSize  int     `json:"wishlist_size"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Packs:         hc.collection.PackCount(),
		Cards:         hc.collection.CardCount(),
		UniqueCards:   hc.collection.UniqueCardCount(),
		WishlistSize:  hc.wishlist.Len(),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(collection services.CollectionServiceInterface, wishlist services.WishlistServiceInterface) *HealthController {
	return &HealthController{
		collection: collection,
		wishlist:   wishlist,
		startTime:  time.Now(),
	}
}
