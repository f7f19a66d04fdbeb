package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/therapprove/provider-portal/backend/internal/availability"
)

type SessionClaims struct {
	jwt.RegisteredClaims
}

// StartSession issues an anonymous session cookie. The session carries
// identity only, not authentication: it scopes one provider's availability
// blob. A returning session picks up whatever it saved last time.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()

	persisted, lastSaved := h.store.LoadAvailability(sessionID)
	anchor := availability.StartOfWeek(time.Now())
	sess := h.sessions.Create(sessionID, anchor, persisted, lastSaved)

	expiration := time.Now().Add(time.Duration(h.config.Session.Expiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   sessionID,
		},
	})
	ss, err := token.SignedString([]byte(h.config.Session.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cookie := &http.Cookie{
		Name:     h.config.Session.CookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	h.successResponse(w, r, "Session started", h.sessionInfo(sess))
}

func (h *Handler) GetSessionInfo(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtxKey).(*availability.Session)

	if lastSaved := sess.LastSaved(); !lastSaved.IsZero() {
		h.infoResponse(w, r, fmt.Sprintf("Loaded saved availability from %s", lastSaved.Format("Jan 2, 2006 3:04 PM")), h.sessionInfo(sess))
		return
	}
	h.successResponse(w, r, "", h.sessionInfo(sess))
}

func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	sess := r.Context().Value(SessionCtxKey).(*availability.Session)
	h.sessions.Destroy(sess.ID)

	http.SetCookie(w, &http.Cookie{
		Name:    h.config.Session.CookieName,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	h.successResponse(w, r, "Session ended", nil)
}

func (h *Handler) sessionInfo(sess *availability.Session) map[string]any {
	anchor := sess.Anchor()
	return map[string]any{
		"sessionID":     sess.ID,
		"weekLabel":     availability.WeekLabel(anchor),
		"weekRange":     availability.WeekRangeLabel(anchor),
		"totalSelected": sess.TotalSelected(),
	}
}
