package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"daddeck/internal/providers"
	"daddeck/internal/services"
)

type TradeController struct {
	logger providers.Logger
	trades services.TradeServiceInterface
}

func NewTradeController(logger providers.Logger, trades services.TradeServiceInterface) *TradeController {
	return &TradeController{logger: logger, trades: trades}
}

type createTradeBody struct {
	Offered   []string `json:"offered"`
	Requested []string `json:"requested"`
}

func (tc *TradeController) CreateTrade(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var body createTradeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	offer, err := tc.trades.CreateOffer(body.Offered, body.Requested)
	if err != nil {
		tc.writeTradeError(w, err)
		return
	}
	tc.logger.Infof(providers.TypePost, "Created trade offer %s (%d for %d)", offer.ID, len(offer.Offered), len(offer.Requested))

	writeJSON(w, http.StatusCreated, offer)
}

func (tc *TradeController) InspectTrade(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	offer, err := tc.trades.Inspect(token)
	if err != nil {
		tc.writeTradeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

type acceptTradeBody struct {
	Token string `json:"token"`
}

func (tc *TradeController) AcceptTrade(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var body acceptTradeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := tc.trades.Accept(body.Token)
	if err != nil {
		tc.writeTradeError(w, err)
		return
	}
	tc.logger.Infof(providers.TypePost, "Accepted trade into pack %s", result.PackID)

	writeJSON(w, http.StatusOK, result)
}

func (tc *TradeController) writeTradeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrTradeConsumed):
		status = http.StatusConflict
	case errors.Is(err, services.ErrNotOwned), errors.Is(err, services.ErrUnknownCard):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
