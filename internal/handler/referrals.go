package handler

import (
	"net/http"
	"strconv"

	"github.com/therapprove/provider-portal/backend/internal/referral"
)

func (h *Handler) referralFilter(r *http.Request) referral.Filter {
	q := r.URL.Query()

	f := referral.Filter{
		Search:      q.Get("search"),
		Stage:       q.Get("stage"),
		Insurance:   q.Get("insurance"),
		Priority:    q.Get("priority"),
		Owner:       q.Get("owner"),
		Zip:         h.config.Referrals.DefaultZip,
		RadiusMiles: h.config.Referrals.DefaultRadius,
		SortKey:     q.Get("sort"),
		SortDesc:    q.Get("dir") == "desc",
	}

	if zip := q.Get("zip"); zip != "" {
		f.Zip = zip
	}
	if radius := q.Get("radius"); radius != "" {
		if miles, err := strconv.ParseFloat(radius, 64); err == nil && miles > 0 {
			f.RadiusMiles = miles
		}
	}
	return f
}

func (h *Handler) ListReferrals(w http.ResponseWriter, r *http.Request) {
	rows, meta := referral.Apply(h.store.LoadReferrals(), h.referralFilter(r))

	h.successResponse(w, r, "", map[string]any{
		"referrals": rows,
		"meta":      meta,
	})
}

func (h *Handler) GetReferralBoard(w http.ResponseWriter, r *http.Request) {
	rows, meta := referral.Apply(h.store.LoadReferrals(), h.referralFilter(r))

	h.successResponse(w, r, "", map[string]any{
		"columns": referral.Board(rows),
		"meta":    meta,
	})
}
