package middlewares

import (
	"context"
	"errors"
	"helpmynew-service/internal/app/models"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"helpmynew-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Authenticate resolves the caller from a bearer token or the session cookie
// and stores it in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		token := sessionToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		userID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "invalid_session_token", requestID, "low",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		user, err := m.UserRepository.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if user == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrUserNotExist(nil))
			return
		}

		callerCtx := context.WithValue(r.Context(), constvars.CONTEXT_CALLER_KEY, user)
		next.ServeHTTP(w, r.WithContext(callerCtx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		if !caller.IsAdmin() {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			utils.LogSecurityEvent(m.Log, "admin_route_denied", requestID, "medium",
				zap.String(constvars.LoggingCallerIDKey, caller.UserID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleRequired(string(models.RoleAdmin)))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CallerFromContext returns the user stored by Authenticate.
func CallerFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(constvars.CONTEXT_CALLER_KEY).(*models.User)
	return user, ok && user != nil
}

func sessionToken(r *http.Request) string {
	if header := r.Header.Get(constvars.HeaderAuthorization); strings.HasPrefix(header, constvars.HeaderBearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, constvars.HeaderBearerPrefix))
	}
	if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
