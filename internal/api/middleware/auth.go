package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

// StaffIDHeader заголовок с ID сотрудника, выполняющего запрос
const StaffIDHeader = "X-Staff-ID"

const (
	msgMissingStaffID = "отсутствует заголовок X-Staff-ID"
	msgInvalidStaffID = "некорректный ID сотрудника в заголовке X-Staff-ID"
)

type contextKey string

const staffIDKey contextKey = "staff_id"

// Auth достает ID сотрудника из заголовка X-Staff-ID и кладет его в контекст.
// Без заголовка запрос отклоняется с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(StaffIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidStaffID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithStaffID(r.Context(), staffID)))
	})
}

// WithStaffID кладет ID сотрудника в контекст
func WithStaffID(ctx context.Context, staffID int64) context.Context {
	return context.WithValue(ctx, staffIDKey, staffID)
}

// GetStaffID достает ID сотрудника из контекста
func GetStaffID(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey).(int64)
	return staffID, ok
}
