package services

import (
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"daddeck/internal/catalog"
	"daddeck/internal/models"
	"daddeck/internal/structures"
)

var (
	ErrTradeEmpty    = errors.New("trade offer must include at least one offered and one requested card")
	ErrNotOwned      = errors.New("offered cards are not all in the collection")
	ErrUnknownCard   = errors.New("requested card does not exist")
	ErrInvalidToken  = errors.New("trade token is invalid or expired")
	ErrTradeConsumed = errors.New("trade offer was already accepted")
)

// TradeOffer is the shareable form of a trade: the signed token carries
// the whole offer, so the server stays stateless until acceptance.
type TradeOffer struct {
	ID        string    `json:"id"`
	Offered   []string  `json:"offered"`
	Requested []string  `json:"requested"`
	Token     string    `json:"token,omitempty"`
	URL       string    `json:"url,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type TradeResult struct {
	PackID   string   `json:"packId"`
	Given    []string `json:"given"`
	Received []string `json:"received"`
}

type TradeServiceInterface interface {
	CreateOffer(offered, requested []string) (*TradeOffer, error)
	Inspect(token string) (*TradeOffer, error)
	Accept(token string) (*TradeResult, error)
	PruneConsumed()
}

type tradeClaims struct {
	jwt.RegisteredClaims
	Offered   []string `json:"offered"`
	Requested []string `json:"requested"`
}

type TradeService struct {
	secret     []byte
	ttl        time.Duration
	baseURL    string
	collection CollectionServiceInterface
	catalog    *catalog.Catalog

	mu       sync.Mutex
	consumed map[string]time.Time // offer id -> token expiry
}

func NewTradeService(conf *structures.Config, collection CollectionServiceInterface, cat *catalog.Catalog) TradeServiceInterface {
	return &TradeService{
		secret:     []byte(conf.Trade.Secret),
		ttl:        conf.Trade.TTL,
		baseURL:    conf.Trade.BaseURL,
		collection: collection,
		catalog:    cat,
		consumed:   make(map[string]time.Time),
	}
}

// CreateOffer signs the offer into a compact token and builds the
// shareable URL. The offered cards must be owned at creation time.
func (ts *TradeService) CreateOffer(offered, requested []string) (*TradeOffer, error) {
	if len(offered) == 0 || len(requested) == 0 {
		return nil, ErrTradeEmpty
	}
	if !ts.collection.Owns(offered) {
		return nil, ErrNotOwned
	}
	for _, id := range requested {
		if _, ok := ts.catalog.Get(id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
		}
	}

	now := time.Now().UTC()
	expires := now.Add(ts.ttl)
	claims := &tradeClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "daddeck",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Offered:   offered,
		Requested: requested,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign trade offer: %w", err)
	}

	return &TradeOffer{
		ID:        claims.ID,
		Offered:   offered,
		Requested: requested,
		Token:     token,
		URL:       ts.baseURL + "/trade?token=" + url.QueryEscape(token),
		ExpiresAt: expires,
	}, nil
}

func (ts *TradeService) parse(token string) (*tradeClaims, error) {
	claims := &tradeClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return ts.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Inspect decodes a token without applying it, for showing the offer to
// the receiving player.
func (ts *TradeService) Inspect(token string) (*TradeOffer, error) {
	claims, err := ts.parse(token)
	if err != nil {
		return nil, err
	}
	return &TradeOffer{
		ID:        claims.ID,
		Offered:   claims.Offered,
		Requested: claims.Requested,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Accept verifies the token and applies the swap: offered cards leave the
// collection, requested cards arrive as a trade pack. A token can be
// accepted at most once.
func (ts *TradeService) Accept(token string) (*TradeResult, error) {
	claims, err := ts.parse(token)
	if err != nil {
		return nil, err
	}

	ts.mu.Lock()
	if _, ok := ts.consumed[claims.ID]; ok {
		ts.mu.Unlock()
		return nil, ErrTradeConsumed
	}
	ts.consumed[claims.ID] = claims.ExpiresAt.Time
	ts.mu.Unlock()

	incoming := make([]*models.Card, 0, len(claims.Requested))
	for _, id := range claims.Requested {
		card, ok := ts.catalog.Get(id)
		if !ok {
			ts.unconsume(claims.ID)
			return nil, fmt.Errorf("%w: %s", ErrUnknownCard, id)
		}
		incoming = append(incoming, card)
	}

	if !ts.collection.RemoveCards(claims.Offered) {
		ts.unconsume(claims.ID)
		return nil, ErrNotOwned
	}
	packID := ts.collection.AddTradedCards(incoming)

	return &TradeResult{
		PackID:   packID,
		Given:    claims.Offered,
		Received: claims.Requested,
	}, nil
}

func (ts *TradeService) unconsume(id string) {
	ts.mu.Lock()
	delete(ts.consumed, id)
	ts.mu.Unlock()
}

// PruneConsumed drops bookkeeping for tokens that can no longer be
// replayed because they expired.
func (ts *TradeService) PruneConsumed() {
	now := time.Now()
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for id, exp := range ts.consumed {
		if now.After(exp) {
			delete(ts.consumed, id)
		}
	}
}
