package internal

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daddeck/internal/catalog"
	"daddeck/internal/controllers"
	"daddeck/internal/migration"
	"daddeck/internal/providers"
	"daddeck/internal/services"
	"daddeck/internal/structures"
)

// --- minimal mocks for routes test ---

type routeTestLogger struct{}

func (m *routeTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Close()                                                  {}

type routeTestCache struct{}

func (m *routeTestCache) Get(_ string) ([]byte, bool) { return nil, false }
func (m *routeTestCache) Set(_ string, _ []byte)      {}

type routeTestCompressor struct{}

func (m *routeTestCompressor) Compress(val []byte) ([]byte, error)   { return val, nil }
func (m *routeTestCompressor) Decompress(val []byte) ([]byte, error) { return val, nil }
func (m *routeTestCompressor) Close()                                {}

func routeTestControllers(t *testing.T) (*controllers.ApiController, *controllers.TradeController, *structures.Config) {
	conf := &structures.Config{
		Persistence: structures.Persistence{
			FilePath:     filepath.Join(t.TempDir(), "collection.bin"),
			WishlistPath: filepath.Join(t.TempDir(), "wishlist.bin"),
			SaveInterval: time.Minute,
		},
		Packs: structures.PacksConfig{StandardSize: 5, PremiumSize: 7, MaxPerRequest: 10},
		Trade: structures.TradeConfig{Secret: "routes-test-secret-0123", TTL: time.Hour},
	}
	logger := &routeTestLogger{}
	cat := catalog.New()
	collection := services.NewCollectionService()
	wishlist := services.NewWishlistService(conf, &routeTestCompressor{})
	facade := migration.NewFacade(migration.NewRunner(migration.NewRegistry(), logger), logger)
	ac := controllers.NewApiController(logger, collection, wishlist, facade, cat,
		catalog.NewGenerator(conf, cat), catalog.NewEventSchedule(), &routeTestCache{})
	tc := controllers.NewTradeController(logger, services.NewTradeService(conf, collection, cat))
	return ac, tc, conf
}

func TestInitRoutes_RegistersAllRoutes(t *testing.T) {
	ac, tc, conf := routeTestControllers(t)

	router := InitRoutes(ac, tc, conf)
	routes := router.GetRoutes()

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	require.Len(t, routes, 13)
	assert.Contains(t, urls, "/cards")
	assert.Contains(t, urls, "/card")
	assert.Contains(t, urls, "/cards/random")
	assert.Contains(t, urls, "/packs/generate")
	assert.Contains(t, urls, "/collection")
	assert.Contains(t, urls, "/collection/export")
	assert.Contains(t, urls, "/collection/import")
	assert.Contains(t, urls, "/events")
	assert.Contains(t, urls, "/event")
	assert.Contains(t, urls, "/wishlist")
	assert.Contains(t, urls, "/trades")
	assert.Contains(t, urls, "/trade")
	assert.Contains(t, urls, "/trade/accept")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	ac, tc, conf := routeTestControllers(t)

	router := InitRoutes(ac, tc, conf)

	mux := http.NewServeMux()
	for _, r := range router.GetRoutes() {
		mux.Handle(r.Url, r.Handler)
	}

	req := httptest.NewRequest(http.MethodPost, "/cards", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/packs/generate", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
