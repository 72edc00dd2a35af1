package httphandler

import (
	"net/http"

	"github.com/niksmo/storefront/internal/core/storefront"
)

func cartFromStorefront(sf *storefront.Storefront) Cart {
	return Cart{
		Open:     sf.Cart.IsOpen(),
		Items:    cartItemsFromDomain(sf.Cart.Items()),
		Count:    sf.Cart.Count(),
		Subtotal: sf.Cart.Subtotal(),
		Checkout: checkoutFromState(sf.Checkout.State()),
	}
}

func (h StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	writeJSON(w, http.StatusOK, cartFromStorefront(sf))
}

func (h StorefrontHandler) PostCartOpen(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Cart.Open()
	writeJSON(w, http.StatusOK, cartFromStorefront(sf))
}

func (h StorefrontHandler) PostCartClose(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Checkout.Close()
	writeJSON(w, http.StatusOK, cartFromStorefront(sf))
}

func (h StorefrontHandler) PostCartItem(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostCartItem"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req AddToCartRequest
	if !decode(w, r, log, &req) {
		return
	}
	if err := sf.AddToCart(req.Size); err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusCreated, cartFromStorefront(sf))
}

func (h StorefrontHandler) PatchCartItem(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PatchCartItem"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req QuantityRequest
	if !decode(w, r, log, &req) {
		return
	}
	sf.Cart.UpdateQuantity(r.PathValue("key"), req.Delta)
	writeJSON(w, http.StatusOK, cartFromStorefront(sf))
}

func (h StorefrontHandler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Cart.Remove(r.PathValue("key"))
	writeJSON(w, http.StatusOK, cartFromStorefront(sf))
}

func (h StorefrontHandler) PostCheckoutStart(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostCheckoutStart"
	log := logger(r, op)

	sf := h.storefront(w, r)
	if err := sf.Checkout.Start(r.Context()); err != nil {
		if isNotAuthenticated(err) {
			redirectToLogin(w, r, sf)
			return
		}
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, cartFromStorefront(sf))
}

func (h StorefrontHandler) PostCheckoutPay(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostCheckoutPay"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req PaymentRequest
	if !decode(w, r, log, &req) {
		return
	}

	order, err := sf.Checkout.Pay(r.Context(), req.toDomain())
	if err != nil {
		if isNotAuthenticated(err) {
			redirectToLogin(w, r, sf)
			return
		}
		writeError(w, log, err)
		return
	}
	log.Info("checkout completed", "orderID", order.OrderID)
	writeJSON(w, http.StatusCreated, orderFromDomain(order))
}
