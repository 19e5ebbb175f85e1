package user

import (
	"context"
	"net/http"

	"github.com/bonesy512/situationship/internal/auth"
	"github.com/bonesy512/situationship/internal/logger"
	"github.com/bonesy512/situationship/internal/models"
)

type dbContextKey string

const (
	dbUserContextKey dbContextKey = "db_user"
)

func GetDBUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(dbUserContextKey).(*models.User)
	return user, ok
}

// UserMiddleware resolves the verified token claims to a database user,
// creating the row on first sight.
func UserMiddleware(repo Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.GetUserFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			dbUser, err := repo.GetOrCreate(
				r.Context(),
				claims.ID,
				claims.Email,
				claims.FirstName,
				claims.LastName,
			)
			if err != nil {
				logger.Log.Error("failed to get or create user", "user_id", claims.ID, "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), dbUserContextKey, dbUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
