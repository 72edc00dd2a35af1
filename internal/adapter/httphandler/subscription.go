package httphandler

import (
	"net/http"

	"github.com/niksmo/storefront/internal/core/storefront"
)

func (h StorefrontHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	writeJSON(w, http.StatusOK, subscriptionFromState(sf.Subscription.State()))
}

func (h StorefrontHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	ps := storefront.Plans()
	out := make([]Plan, len(ps))
	for i, p := range ps {
		out[i] = planFromDomain(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h StorefrontHandler) PostSubscriptionOpen(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Subscription.Open()
	writeJSON(w, http.StatusOK, subscriptionFromState(sf.Subscription.State()))
}

func (h StorefrontHandler) PostSubscriptionSelect(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostSubscriptionSelect"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req SelectPlanRequest
	if !decode(w, r, log, &req) {
		return
	}
	if err := sf.Subscription.Select(storefront.PlanID(req.PlanID)); err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, subscriptionFromState(sf.Subscription.State()))
}

func (h StorefrontHandler) PostSubscriptionContinue(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Subscription.Continue()
	writeJSON(w, http.StatusOK, subscriptionFromState(sf.Subscription.State()))
}

func (h StorefrontHandler) PostSubscriptionPay(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostSubscriptionPay"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req PaymentRequest
	if !decode(w, r, log, &req) {
		return
	}
	if err := sf.Subscription.Pay(r.Context(), req.toDomain()); err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, subscriptionFromState(sf.Subscription.State()))
}

func (h StorefrontHandler) PostSubscriptionClose(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	sf.Subscription.Close()
	writeJSON(w, http.StatusOK, subscriptionFromState(sf.Subscription.State()))
}
