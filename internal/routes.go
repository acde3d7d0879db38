package internal

import (
	"net/http"

	"daddeck/internal/controllers"
	"daddeck/internal/providers"
	"daddeck/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, tradeController *controllers.TradeController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/cards", http.HandlerFunc(apiController.ListCards))
	routers.Get("/card", http.HandlerFunc(apiController.GetCard))
	routers.Post("/cards/random", http.HandlerFunc(apiController.RandomCards))
	routers.Post("/packs/generate", http.HandlerFunc(apiController.GeneratePacks))
	routers.Get("/collection", http.HandlerFunc(apiController.GetCollection))
	routers.Get("/collection/export", http.HandlerFunc(apiController.ExportCollection))
	routers.Post("/collection/import", http.HandlerFunc(apiController.ImportCollection))
	routers.Get("/events", http.HandlerFunc(apiController.ListEvents))
	routers.Get("/event", http.HandlerFunc(apiController.GetEvent))
	routers.Get("/wishlist", http.HandlerFunc(apiController.GetWishlist))
	routers.Post("/wishlist", http.HandlerFunc(apiController.AddToWishlist))
	routers.Delete("/wishlist", http.HandlerFunc(apiController.RemoveFromWishlist))
	routers.Post("/trades", http.HandlerFunc(tradeController.CreateTrade))
	routers.Get("/trade", http.HandlerFunc(tradeController.InspectTrade))
	routers.Post("/trade/accept", http.HandlerFunc(tradeController.AcceptTrade))
	return routers
}
