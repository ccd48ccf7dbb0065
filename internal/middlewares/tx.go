package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/andreionishchenko/Final-proekt-D/internal/logger"
	"github.com/jmoiron/sqlx"
)

// bufferedWriter holds the handler's response until the transaction
// outcome is known, so a failed commit never exposes a success reply.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	for key, values := range bw.header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(bw.statusCode)
	w.Write(bw.body.Bytes())
}

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is committed only when the handler responds with a
// non-error status; any 4xx/5xx response rolls it back so a rejected
// request leaves no partial writes. The response is buffered and sent
// after the commit, so a commit failure reaches the client as 500
// rather than the handler's success reply.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			bw := newBufferedWriter()

			ctx := setTxToContext(r.Context(), tx)
			r = r.WithContext(ctx)

			next.ServeHTTP(bw, r)

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"Internal server error"}`))
				return
			}

			bw.flush(w)
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
