package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// requestIDKey ключ request ID в контексте запроса
const requestIDKey contextKey = "request_id"

// RequestIDHeader имя заголовка с request ID
const RequestIDHeader = "X-Request-ID"

// RequestID проставляет каждому запросу уникальный ID.
// Входящий X-Request-ID уважается, иначе генерируется новый UUID
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID возвращает request ID из контекста (пустая строка, если нет)
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
