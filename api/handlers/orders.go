package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/crossfusion/order-engine/chains"
	"github.com/crossfusion/order-engine/engine"
	"github.com/crossfusion/order-engine/order"
	"github.com/crossfusion/order-engine/relayer"
)

type OrderBody struct {
	SrcChainId   uint64 `json:"srcChainId"`
	DstChainId   uint64 `json:"dstChainId"`
	SrcToken     string `json:"srcToken"`
	DstToken     string `json:"dstToken"`
	MakingAmount string `json:"makingAmount"`
	TakingAmount string `json:"takingAmount"`
	Receiver     string `json:"receiver"`
	MakerTraits  string `json:"makerTraits"`
}

type OrderResponse struct {
	OrderHash  string                `json:"orderHash"`
	QuoteID    string                `json:"quoteId"`
	State      string                `json:"state"`
	SecretHash string                `json:"secretHash"`
	Result     *relayer.SubmitResult `json:"result,omitempty"`
}

type OrderHandler struct {
	engine     *engine.Engine
	store      *engine.Store
	retryLimit time.Duration
}

func NewOrderHandler(e *engine.Engine, store *engine.Store, retryLimit time.Duration) *OrderHandler {
	return &OrderHandler{
		engine:     e,
		store:      store,
		retryLimit: retryLimit,
	}
}

// HandleCreate drives one full swap attempt: build, sign and submit with
// transient retries. Validation problems map to 400, everything past the
// user's input maps to 502.
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	b := &OrderBody{}
	d := json.NewDecoder(r.Body)
	if err := d.Decode(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	req := engine.SwapRequest{
		SrcChain:     chains.ChainID(b.SrcChainId),
		DstChain:     chains.ChainID(b.DstChainId),
		SrcToken:     b.SrcToken,
		DstToken:     b.DstToken,
		MakingAmount: b.MakingAmount,
		TakingAmount: b.TakingAmount,
		Receiver:     b.Receiver,
		MakerTraits:  b.MakerTraits,
	}

	a := h.engine.NewAttempt()
	if err := h.engine.Build(a, req); err != nil {
		var validationErr *order.ValidationError
		if errors.As(err, &validationErr) {
			JSONError(w, err, http.StatusBadRequest)
		} else {
			JSONError(w, err, http.StatusBadGateway)
		}
		return
	}

	if err := h.engine.Sign(r.Context(), a); err != nil {
		JSONError(w, err, http.StatusBadGateway)
		return
	}

	if err := h.engine.SubmitWithRetry(r.Context(), a, h.retryLimit); err != nil {
		JSONError(w, err, http.StatusBadGateway)
		return
	}

	resp := &OrderResponse{
		OrderHash:  a.OrderHash(),
		QuoteID:    a.QuoteID(),
		State:      a.State().String(),
		SecretHash: a.SecretHash().Hex(),
		Result:     a.Result(),
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resp)
}

// HandleStatus returns the submitted envelope for an order hash. The secret
// never leaves the engine.
func (h *OrderHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderHash := vars["orderHash"]

	data, err := h.store.Get(orderHash)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data.Submission)
}
