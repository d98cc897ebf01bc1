package app

import (
	"context"
	"net/http"
	"time"

	"github.com/Spok95/university-records-console/internal/api"
	"github.com/Spok95/university-records-console/internal/metrics"
)

type HTTPServer struct {
	srv *http.Server
}

// StartHTTP serves /healthz and /metrics. Health means the backend
// answered a cheap authenticated probe within budget.
func StartHTTP(ctx context.Context, addr string, client *api.Client) *HTTPServer {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if _, err := client.ListFaculties(ctx); err != nil {
			http.Error(w, "backend not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = srv.ListenAndServe() // закрываем аккуратно при Shutdown
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	return &HTTPServer{srv: srv}
}
