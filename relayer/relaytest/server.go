// Package relaytest provides an in-memory relayer that accepts order
// submissions and deduplicates them by quoteId. Tests use it to verify
// idempotent resubmission; the dev-relayer command serves it for local
// development against a host UI.
package relaytest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/crossfusion/order-engine/relayer"
)

type Server struct {
	mu       sync.Mutex
	accepted map[string]*relayer.SubmitResult
	failNext int
}

func NewServer() *Server {
	return &Server{
		accepted: make(map[string]*relayer.SubmitResult),
	}
}

// FailNext makes the next n submissions answer 503, simulating relayer
// outages for transient-retry tests.
func (s *Server) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
}

// OrderCount reports how many distinct orders the relayer holds. Duplicate
// quoteIds never create a second order.
func (s *Server) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accepted)
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc(relayer.SubmitPath, s.handleSubmit).Methods("POST")
	return r
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sub := &relayer.Submission{}
	d := json.NewDecoder(r.Body)
	if err := d.Decode(sub); err != nil {
		jsonError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	if err := validate(sub); err != nil {
		jsonError(w, err, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext > 0 {
		s.failNext--
		jsonError(w, fmt.Errorf("relayer unavailable"), http.StatusServiceUnavailable)
		return
	}

	result, ok := s.accepted[sub.QuoteID]
	if !ok {
		orderHash := fmt.Sprintf("relayer-order-%d", len(s.accepted)+1)
		result = &relayer.SubmitResult{
			OrderHash: orderHash,
			Status:    "accepted",
		}
		s.accepted[sub.QuoteID] = result
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(result)
}

func validate(sub *relayer.Submission) error {
	if sub.QuoteID == "" {
		return fmt.Errorf("missing quoteId")
	}
	if sub.Signature == "" || sub.Signature == "0x" {
		return fmt.Errorf("missing signature")
	}
	if sub.Order.Maker == "" {
		return fmt.Errorf("missing order maker")
	}
	if len(sub.SecretHashes) == 0 {
		return fmt.Errorf("missing secret hashes")
	}
	return nil
}

func jsonError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	type errorResponse struct {
		Code   int    `json:"code"`
		Reason string `json:"reason"`
	}
	resp := errorResponse{
		Reason: err.Error(),
		Code:   code,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// Serve runs the stub relayer until the context is cancelled.
func Serve(ctx context.Context, addr string) {
	s := NewServer()
	server := &http.Server{
		Addr:        addr,
		Handler:     s.Handler(),
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting dev relayer on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down dev relayer")
	} else {
		log.Info().Msgf("Dev relayer shut down gracefully.")
	}
}
