package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/storefront"
)

// GET    v1/state
// GET    v1/home                          catalog carousels and categories
// POST   v1/home                          back to the home view
// GET    v1/categories/{name}             category listing
// GET    v1/products/{id}                 product page with reviews
// GET    v1/cart
// POST   v1/cart/{open,close}
// POST   v1/cart/items                    {"size"} for the selected product
// PATCH  v1/cart/items/{key}              {"delta"}
// DELETE v1/cart/items/{key}
// POST   v1/checkout/start                401 {"redirect":"login"} when signed out
// POST   v1/checkout/pay                  payment form
// GET    v1/account
// POST   v1/account/{open,close,switch,register,login,logout,back}
// GET    v1/account/orders
// GET    v1/reviews
// PUT    v1/reviews/rating                {"rating"} or {"delta"}
// POST   v1/reviews                       {"comment","rating"}
// GET    v1/info/{key}
// DELETE v1/info
// GET    v1/subscription
// GET    v1/subscription/plans
// POST   v1/subscription/{open,select,continue,pay,close}

type StorefrontHandler struct {
	clients *Clients
	catalog port.Catalog
}

func RegisterStorefront(
	mux *http.ServeMux, clients *Clients, catalog port.Catalog,
) {
	h := StorefrontHandler{clients, catalog}

	mux.HandleFunc("GET /v1/state", h.GetState)
	mux.HandleFunc("GET /v1/home", h.GetHome)
	mux.HandleFunc("POST /v1/home", h.PostHome)
	mux.HandleFunc("GET /v1/categories/{name}", h.GetCategory)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)

	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/open", h.PostCartOpen)
	mux.HandleFunc("POST /v1/cart/close", h.PostCartClose)
	mux.HandleFunc("POST /v1/cart/items", h.PostCartItem)
	mux.HandleFunc("PATCH /v1/cart/items/{key}", h.PatchCartItem)
	mux.HandleFunc("DELETE /v1/cart/items/{key}", h.DeleteCartItem)
	mux.HandleFunc("POST /v1/checkout/start", h.PostCheckoutStart)
	mux.HandleFunc("POST /v1/checkout/pay", h.PostCheckoutPay)

	mux.HandleFunc("GET /v1/account", h.GetAccount)
	mux.HandleFunc("POST /v1/account/open", h.PostAccountOpen)
	mux.HandleFunc("POST /v1/account/close", h.PostAccountClose)
	mux.HandleFunc("POST /v1/account/switch", h.PostAccountSwitch)
	mux.HandleFunc("POST /v1/account/register", h.PostRegister)
	mux.HandleFunc("POST /v1/account/login", h.PostLogin)
	mux.HandleFunc("POST /v1/account/logout", h.PostLogout)
	mux.HandleFunc("POST /v1/account/back", h.PostAccountBack)
	mux.HandleFunc("GET /v1/account/orders", h.GetOrders)

	mux.HandleFunc("GET /v1/reviews", h.GetReviews)
	mux.HandleFunc("PUT /v1/reviews/rating", h.PutRating)
	mux.HandleFunc("POST /v1/reviews", h.PostReview)

	mux.HandleFunc("GET /v1/info/{key}", h.GetInfo)
	mux.HandleFunc("DELETE /v1/info", h.DeleteInfo)

	mux.HandleFunc("GET /v1/subscription", h.GetSubscription)
	mux.HandleFunc("GET /v1/subscription/plans", h.GetPlans)
	mux.HandleFunc("POST /v1/subscription/open", h.PostSubscriptionOpen)
	mux.HandleFunc("POST /v1/subscription/select", h.PostSubscriptionSelect)
	mux.HandleFunc("POST /v1/subscription/continue", h.PostSubscriptionContinue)
	mux.HandleFunc("POST /v1/subscription/pay", h.PostSubscriptionPay)
	mux.HandleFunc("POST /v1/subscription/close", h.PostSubscriptionClose)
}

// storefront resolves the client state from the cookie and re-derives the
// session from a bearer token the state does not hold yet.
func (h StorefrontHandler) storefront(
	w http.ResponseWriter, r *http.Request,
) *storefront.Storefront {
	var cookieID string
	if c, err := r.Cookie(ClientCookie); err == nil {
		cookieID = c.Value
	}

	id, sf, created := h.clients.Get(cookieID)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     ClientCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	if token := bearer(r); token != "" {
		sess, ok := sf.Session()
		if !ok || sess.Token != token {
			sf.Restore(r.Context(), token)
		}
	}
	return sf
}

func bearer(r *http.Request) string {
	const prefix = "Bearer "
	v := r.Header.Get("Authorization")
	if len(v) <= len(prefix) || !strings.EqualFold(v[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(v[len(prefix):])
}

func logger(r *http.Request, op string) *slog.Logger {
	return slog.With("op", op, "requestID", middleware.GetReqID(r.Context()))
}

func (h StorefrontHandler) GetState(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	writeJSON(w, http.StatusOK, stateFromDomain(sf.State()))
}

func (h StorefrontHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Home{
		NewArrivals: productsFromDomain(h.catalog.NewArrivals()),
		Bestsellers: productsFromDomain(h.catalog.Bestsellers()),
		Categories:  categoriesFromDomain(h.catalog.Categories()),
	})
}

func (h StorefrontHandler) PostHome(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Home()
	writeJSON(w, http.StatusOK, stateFromDomain(sf.State()))
}

func (h StorefrontHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	ps := sf.ShowCategory(r.PathValue("name"))
	writeJSON(w, http.StatusOK, productsFromDomain(ps))
}

func (h StorefrontHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetProduct"
	log := logger(r, op)

	sf := h.storefront(w, r)
	p, err := sf.ShowProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, ProductPage{
		Product: productFromDomain(p),
		Sizes:   storefront.Sizes,
		Reviews: reviewsFromState(sf.Reviews.State()),
	})
}

func (h StorefrontHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	writeJSON(w, http.StatusOK, infoFromDomain(sf.OpenInfo(r.PathValue("key"))))
}

func (h StorefrontHandler) DeleteInfo(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.CloseInfo()
	w.WriteHeader(http.StatusNoContent)
}

// decode writes a 400 and returns false on a malformed body.
func decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, v any) bool {
	if err := readJSON(r, v); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON data"})
		return false
	}
	return true
}

func isNotAuthenticated(err error) bool {
	return errors.Is(err, domain.ErrNotAuthenticated)
}

// redirectToLogin answers a signed-out checkout: the cart closes, the login
// view opens and the client is told to show it.
func redirectToLogin(
	w http.ResponseWriter, r *http.Request, sf *storefront.Storefront,
) {
	sf.Checkout.Close()
	_ = sf.Account.Open(r.Context(), storefront.AccountLogin)
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{
		Error:    domain.ErrNotAuthenticated.Error(),
		Redirect: string(storefront.AccountLogin),
	})
}
