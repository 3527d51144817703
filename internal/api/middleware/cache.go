package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *captureWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache кеширует успешные ответы GET запросов в Redis на заданный
// TTL. Кеш чисто ускоряющий: недоступный Redis не ломает запрос, а
// устаревший на TTL список слотов допустим - корректность гарантирует
// проверка конфликтов при создании бронирования, не этот слой.
func ResponseCache(rdb *redis.Client, ttl time.Duration, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rdb == nil || r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(r)

			if raw, err := rdb.Get(r.Context(), key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					w.Header().Set("Content-Type", cached.ContentType)
					w.Header().Set("X-Cache", "HIT")
					w.WriteHeader(cached.Status)
					_, _ = w.Write(cached.Body)
					return
				}
			}

			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(cw, r)

			if cw.status != http.StatusOK {
				return
			}

			payload, err := json.Marshal(cachedResponse{
				Status:      cw.status,
				ContentType: cw.Header().Get("Content-Type"),
				Body:        cw.buf.Bytes(),
			})
			if err != nil {
				return
			}
			// Запись в кеш вне контекста запроса: клиенту ответ уже отдан
			if err := rdb.SetEx(context.Background(), key, payload, ttl).Err(); err != nil {
				logger.Warn("response cache: failed to store key %s: %v", key, err)
			}
		})
	}
}

func cacheKey(r *http.Request) string {
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("respcache:%x", sum[:])
}
