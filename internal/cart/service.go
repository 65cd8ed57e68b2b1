package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/zyreejago/hidroponik/internal/catalog"
	"github.com/zyreejago/hidroponik/pkg/config"
	pkgerrors "github.com/zyreejago/hidroponik/pkg/errors"
)

// maxItemQuantity caps a single line to keep carts within own-delivery range.
const maxItemQuantity = 100

type store interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// Item is a stored cart line. Quantity is in kilograms.
type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type storedCart struct {
	Items []Item `json:"items"`
}

// ItemView is a cart line joined with catalog data.
type ItemView struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
	Quantity    int             `json:"quantity"`
	WeightGrams int             `json:"weight_grams"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// View is the priced cart returned to clients.
type View struct {
	Items            []ItemView      `json:"items"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	TotalWeightGrams int             `json:"total_weight_grams"`
}

// Service manages session-scoped carts.
type Service interface {
	Get(ctx context.Context, sessionID string) (*View, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (*View, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*View, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*View, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store store
	ttl   time.Duration
}

// NewService builds a cart service backed by the provided store.
func NewService(store store, cfg config.CartConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &service{store: store, ttl: cfg.TTL}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*View, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return buildView(cart)
}

func (s *service) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*View, error) {
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if _, err := catalog.FindByID(productID); err != nil {
		return nil, err
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			next := cart.Items[i].Quantity + quantity
			if next > maxItemQuantity {
				next = maxItemQuantity
			}
			cart.Items[i].Quantity = next
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, Item{ProductID: productID, Quantity: quantity})
	}

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return buildView(cart)
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*View, error) {
	// Removal is RemoveItem; the lowest this can set a line to is 1.
	if quantity < 1 {
		quantity = 1
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			if err := s.save(ctx, sessionID, cart); err != nil {
				return nil, err
			}
			return buildView(cart)
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
}

func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) (*View, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	removed := false
	for _, item := range cart.Items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	cart.Items = kept

	if len(cart.Items) == 0 {
		if err := s.store.Del(ctx, s.store.CartKey(sessionID)); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
		}
	} else if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return buildView(cart)
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Del(ctx, s.store.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart")
	}
	return nil
}

func (s *service) load(ctx context.Context, sessionID string) (*storedCart, error) {
	raw, err := s.store.Get(ctx, s.store.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return &storedCart{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart")
	}

	cart := &storedCart{}
	if err := json.Unmarshal([]byte(raw), cart); err != nil {
		// A corrupt payload is unrecoverable, start fresh.
		return &storedCart{}, nil
	}
	return cart, nil
}

func (s *service) save(ctx context.Context, sessionID string, cart *storedCart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding cart")
	}
	if err := s.store.Set(ctx, s.store.CartKey(sessionID), string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if quantity > maxItemQuantity {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("quantity must not exceed %d", maxItemQuantity))
	}
	return nil
}

func buildView(cart *storedCart) (*View, error) {
	view := &View{
		Items:    make([]ItemView, 0, len(cart.Items)),
		Subtotal: decimal.Zero,
	}
	for _, item := range cart.Items {
		product, err := catalog.FindByID(item.ProductID)
		if err != nil {
			// Items for retired products drop out of the priced view.
			continue
		}
		lineTotal := product.PricePerKg.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, ItemView{
			ProductID:   product.ID,
			Name:        product.Name,
			PricePerKg:  product.PricePerKg,
			Quantity:    item.Quantity,
			WeightGrams: item.Quantity * catalog.UnitWeightGrams,
			LineTotal:   lineTotal,
		})
		view.Subtotal = view.Subtotal.Add(lineTotal)
		view.TotalWeightGrams += item.Quantity * catalog.UnitWeightGrams
	}
	return view, nil
}
