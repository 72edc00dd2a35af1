package httphandler

import "net/http"

func (h StorefrontHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	writeJSON(w, http.StatusOK, reviewsFromState(sf.Reviews.State()))
}

func (h StorefrontHandler) PutRating(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PutRating"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req RatingRequest
	if !decode(w, r, log, &req) {
		return
	}
	if req.Rating != nil {
		sf.Reviews.SetRating(*req.Rating)
	} else {
		sf.Reviews.StepRating(req.Delta)
	}
	writeJSON(w, http.StatusOK, reviewsFromState(sf.Reviews.State()))
}

func (h StorefrontHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostReview"
	log := logger(r, op)

	sf := h.storefront(w, r)
	var req ReviewRequest
	if !decode(w, r, log, &req) {
		return
	}
	if req.Rating != nil {
		sf.Reviews.SetRating(*req.Rating)
	}

	created, err := sf.Reviews.Submit(r.Context(), req.Comment)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusCreated, reviewFromDomain(created))
}
