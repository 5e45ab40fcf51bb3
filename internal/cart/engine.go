package cart

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/api"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/domain"
	"github.com/ChikamsoChidebe/Shanki-Vendor/internal/session"
)

// CartAPI is the slice of the marketplace client the engine needs.
// Consumers define this interface, not the HTTP implementation.
type CartAPI interface {
	GetCart(ctx context.Context) (*domain.Cart, error)
	AddCartItem(ctx context.Context, productID string, quantity int) (*api.CartResponse, error)
	UpdateCartItem(ctx context.Context, productID string, quantity int) (*api.CartResponse, error)
	RemoveCartItem(ctx context.Context, productID string) (*api.CartResponse, error)
	ClearCart(ctx context.Context) error
}

// Engine owns the local cart snapshot for the active principal. Every
// mutation goes through the server, and the only legitimate local update on
// success is replacing the whole snapshot with the server's cart. Failures
// leave the snapshot untouched, there is never a partially-applied state.
type Engine struct {
	api CartAPI
	sfg singleflight.Group // collapses concurrent loads

	mu       sync.RWMutex
	snapshot domain.Cart
	gen      uint64 // bumped by Reset, a stale load must not overwrite it

	loadTimeout time.Duration
}

func NewEngine(cartAPI CartAPI) *Engine {
	return &Engine{
		api:         cartAPI,
		loadTimeout: 10 * time.Second,
	}
}

// TrackSession wires the engine to auth transitions: a customer becoming
// authenticated triggers a reload, any transition out clears the local
// snapshot immediately without a network call.
func (e *Engine) TrackSession(s *session.Store) {
	s.Subscribe(func(state session.State, user *domain.User) {
		if state == session.StateAuthenticated && user != nil && user.Role == domain.RoleCustomer {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), e.loadTimeout)
				defer cancel()
				e.Load(ctx)
			}()
			return
		}
		e.Reset()
	})
}

// Load fetches the authoritative cart and replaces the local snapshot
// wholesale. Concurrent callers share a single request.
func (e *Engine) Load(ctx context.Context) domain.Result {
	_, err, _ := e.sfg.Do("load", func() (interface{}, error) {
		gen := e.generation()
		cart, errGet := e.api.GetCart(ctx)
		if errGet != nil {
			return nil, errGet
		}
		e.replaceIfCurrent(*cart, gen)
		return nil, nil
	})
	if err != nil {
		return domain.Result{Success: false, Message: api.ErrorMessage(err, "Failed to load cart")}
	}
	return domain.Result{Success: true}
}

func (e *Engine) AddItem(ctx context.Context, productID string, quantity int) domain.Result {
	if quantity < 1 {
		return domain.Result{Success: false, Message: domain.ErrQuantityInvalid.Error()}
	}

	resp, err := e.api.AddCartItem(ctx, productID, quantity)
	if err != nil {
		return domain.Result{Success: false, Message: api.ErrorMessage(err, "Failed to add item to cart")}
	}

	e.replace(resp.Cart)
	return domain.Result{Success: true, Message: resp.Message}
}

// UpdateQuantity requests an absolute quantity change. Quantities below 1
// and products not in the local snapshot are rejected before any network
// call, use RemoveItem for zero.
func (e *Engine) UpdateQuantity(ctx context.Context, productID string, quantity int) domain.Result {
	if quantity < 1 {
		return domain.Result{Success: false, Message: domain.ErrQuantityInvalid.Error()}
	}
	if !e.IsInCart(productID) {
		return domain.Result{Success: false, Message: domain.ErrItemNotInCart.Error()}
	}

	resp, err := e.api.UpdateCartItem(ctx, productID, quantity)
	if err != nil {
		return domain.Result{Success: false, Message: api.ErrorMessage(err, "Failed to update quantity")}
	}

	e.replace(resp.Cart)
	return domain.Result{Success: true, Message: resp.Message}
}

func (e *Engine) RemoveItem(ctx context.Context, productID string) domain.Result {
	resp, err := e.api.RemoveCartItem(ctx, productID)
	if err != nil {
		return domain.Result{Success: false, Message: api.ErrorMessage(err, "Failed to remove item")}
	}

	e.replace(resp.Cart)
	return domain.Result{Success: true, Message: resp.Message}
}

// Clear deletes the whole cart server-side. The result is deterministic, so
// the local snapshot is set to empty without needing the server's payload.
func (e *Engine) Clear(ctx context.Context) domain.Result {
	if err := e.api.ClearCart(ctx); err != nil {
		return domain.Result{Success: false, Message: api.ErrorMessage(err, "Failed to clear cart")}
	}

	e.Reset()
	return domain.Result{Success: true, Message: "Cart cleared"}
}

// Reset drops the local snapshot without a network call and invalidates any
// in-flight load, so a logout cannot be repopulated by a late response.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	e.snapshot = domain.Cart{}
}

func (e *Engine) generation() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gen
}

func (e *Engine) replace(cart domain.Cart) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snapshot = cart
}

// replaceIfCurrent applies a loaded cart only if no Reset happened since the
// load started.
func (e *Engine) replaceIfCurrent(cart domain.Cart, gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen != gen {
		return
	}
	e.snapshot = cart
}

// Snapshot returns a copy of the current cart.
func (e *Engine) Snapshot() domain.Cart {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot.Clone()
}

func (e *Engine) TotalItems() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot.TotalItems
}

func (e *Engine) TotalPrice() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot.TotalPrice
}

// ItemCount returns the quantity of the given product in the cart, 0 if absent.
func (e *Engine) ItemCount(productID string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if item, ok := e.snapshot.ItemFor(productID); ok {
		return item.Quantity
	}
	return 0
}

func (e *Engine) IsInCart(productID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.snapshot.ItemFor(productID)
	return ok
}

// Shipping, Tax and Total are pure reads over the current subtotal.

func (e *Engine) Shipping() float64 {
	return domain.Shipping(e.TotalPrice())
}

func (e *Engine) Tax() float64 {
	return domain.Tax(e.TotalPrice())
}

func (e *Engine) Total() float64 {
	return domain.Total(e.TotalPrice())
}
