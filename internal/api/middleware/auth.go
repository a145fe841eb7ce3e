package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/internal/api/handlers"
)

const (
	headerUserID    = "X-User-ID"
	headerUserAdmin = "X-User-Admin"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

type actorCtxKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает актора из заголовков X-User-ID и X-User-Admin.
// Аутентификацию выполняет шлюз, сервис доверяет его заголовкам.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get(headerUserID)
			if userIDStr == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, headerUserID)
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
				return
			}

			userID, err := strconv.ParseInt(userIDStr, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - Invalid %s header: %q", r.Method, r.URL.Path, headerUserID, userIDStr)
				handlers.RespondError(w, http.StatusUnauthorized, msgInvalidUserID)
				return
			}

			actor := access.Actor{
				UserID:  userID,
				IsAdmin: r.Header.Get(headerUserAdmin) == "true",
			}

			ctx := context.WithValue(r.Context(), actorCtxKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext возвращает актора, положенного Auth middleware
func ActorFromContext(ctx context.Context) (access.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(access.Actor)
	return actor, ok
}
