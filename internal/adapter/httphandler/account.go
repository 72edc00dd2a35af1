package httphandler

import (
	"errors"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/storefront"
)

func (h StorefrontHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	writeJSON(w, http.StatusOK, accountFromState(sf.Account.State()))
}

func (h StorefrontHandler) PostAccountOpen(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostAccountOpen"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req OpenAccountRequest
	if !decode(w, r, log, &req) {
		return
	}
	// An order history failure is kept inline in the account state.
	if err := sf.Account.Open(r.Context(), storefront.AccountView(req.View)); err != nil {
		log.Debug("account opened with error", "err", err)
	}
	writeJSON(w, http.StatusOK, accountFromState(sf.Account.State()))
}

func (h StorefrontHandler) PostAccountClose(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Account.Close()
	writeJSON(w, http.StatusOK, accountFromState(sf.Account.State()))
}

func (h StorefrontHandler) PostAccountSwitch(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostAccountSwitch"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req OpenAccountRequest
	if !decode(w, r, log, &req) {
		return
	}
	sf.Account.Switch(storefront.AccountView(req.View))
	writeJSON(w, http.StatusOK, accountFromState(sf.Account.State()))
}

func (h StorefrontHandler) PostRegister(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostRegister"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req RegisterRequest
	if !decode(w, r, log, &req) {
		return
	}

	sess, err := sf.Account.Register(r.Context(), domain.Credentials{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeSession(w, sess, http.StatusCreated)
}

func (h StorefrontHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostLogin"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req LoginRequest
	if !decode(w, r, log, &req) {
		return
	}

	sess, err := sf.Account.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, storefront.ErrOrdersNotLoaded) {
			writeError(w, log, err)
			return
		}
		log.Warn("failed to load orders after login", "err", err)
	}
	writeSession(w, sess, http.StatusOK)
}

func writeSession(w http.ResponseWriter, sess domain.Session, status int) {
	writeJSON(w, status, Session{
		Token: sess.Token,
		User:  *userFromDomain(&sess.User),
	})
}

func (h StorefrontHandler) PostLogout(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Account.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h StorefrontHandler) PostAccountBack(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Account.Back()
	writeJSON(w, http.StatusOK, accountFromState(sf.Account.State()))
}

func (h StorefrontHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetOrders"
	log := logger(r, op)

	sf := h.storefront(w, r)
	orders, err := sf.Account.ShowOrders(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	out := ordersFromDomain(orders)
	if out == nil {
		out = []Order{}
	}
	writeJSON(w, http.StatusOK, out)
}
