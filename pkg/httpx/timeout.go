package httpx

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/aussiebroadwan/todo/pkg/slogx"
)

// TimeoutMessage is the envelope message sent when a request runs out of time.
var TimeoutMessage = ErrorMessage("time out.")

// Timeout bounds every request to d. The request context is cancelled at the
// deadline and the client gets a 503 envelope; anything the handler writes
// afterwards is discarded.
func Timeout(d time.Duration) Middleware {
	body, _ := json.Marshal(Envelope{Result: false, Message: TimeoutMessage})

	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, d, string(body))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// TimeoutHandler writes its body straight to w, so the header has
			// to be in place before it runs. Handlers overwrite it on success.
			w.Header().Set("Content-Type", "application/json")
			th.ServeHTTP(w, r)
		})
	}
}

// Recover turns a panicking handler into a 500 envelope. http.ErrAbortHandler
// is re-raised so net/http can abort the connection as intended.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slogx.FromContext(r.Context()).Error("panic serving request",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteFailure(w, http.StatusInternalServerError, ErrorMessage("Unhandled internal error"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
