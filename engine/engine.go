package engine

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/crossfusion/order-engine/chains"
	"github.com/crossfusion/order-engine/config"
	"github.com/crossfusion/order-engine/metrics"
	"github.com/crossfusion/order-engine/order"
	"github.com/crossfusion/order-engine/relayer"
	"github.com/crossfusion/order-engine/signer"
)

// SubmitClient abstracts the relayer submission endpoint.
type SubmitClient interface {
	Submit(ctx context.Context, s *relayer.Submission) (*relayer.SubmitResult, error)
}

// WalletProvider supplies already-resolved addresses per chain for default
// receiver resolution. Wallet discovery itself is outside the engine.
type WalletProvider interface {
	Address(chainID chains.ChainID) (string, bool)
}

// StaticWalletProvider serves addresses from a fixed map, typically loaded
// from configuration.
type StaticWalletProvider map[chains.ChainID]string

func (p StaticWalletProvider) Address(chainID chains.ChainID) (string, bool) {
	addr, ok := p[chainID]
	return addr, ok
}

// SwapRequest carries the user selections for one cross-chain swap.
type SwapRequest struct {
	SrcChain     chains.ChainID
	DstChain     chains.ChainID
	SrcToken     string
	DstToken     string
	MakingAmount string
	TakingAmount string
	Receiver     string
	MakerTraits  string
}

// Engine sequences build -> sign -> submit for independent swap attempts.
type Engine struct {
	tokens  *config.TokenStore
	builder *order.Builder
	rand    io.Reader
	signer  signer.Signer
	client  SubmitClient
	wallets WalletProvider
	store   *Store
	metrics *metrics.OrderMetrics
}

func New(
	tokens *config.TokenStore,
	rand io.Reader,
	sg signer.Signer,
	client SubmitClient,
	wallets WalletProvider,
	store *Store,
	m *metrics.OrderMetrics,
) *Engine {
	return &Engine{
		tokens:  tokens,
		builder: order.NewBuilder(rand),
		rand:    rand,
		signer:  sg,
		client:  client,
		wallets: wallets,
		store:   store,
		metrics: m,
	}
}

// Attempt owns the state of one swap: its secret, order, signature and
// quoteId. Concurrent attempts are fully independent; nothing is shared.
type Attempt struct {
	mu sync.Mutex

	state   State
	failure FailureKind
	lastErr error

	srcChain   chains.ChainID
	dstChain   chains.ChainID
	secret     *order.Secret
	secretHash order.SecretHash
	ord        *order.Order
	orderHash  string
	quoteID    string
	sig        signer.Signature
	sub        *relayer.Submission
	result     *relayer.SubmitResult
}

func (e *Engine) NewAttempt() *Attempt {
	return &Attempt{state: Idle}
}

func (a *Attempt) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Attempt) Failure() (FailureKind, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failure, a.lastErr
}

func (a *Attempt) OrderHash() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.orderHash
}

func (a *Attempt) QuoteID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.quoteID
}

func (a *Attempt) Result() *relayer.SubmitResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

// Order returns a copy of the built order.
func (a *Attempt) Order() (order.Order, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ord == nil {
		return order.Order{}, false
	}
	return *a.ord, true
}

func (a *Attempt) SecretHash() order.SecretHash {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.secretHash
}

// Build assembles a fresh order, secret commitment and quoteId. Re-entering
// build from Built or Signed discards the previous secret and signature; a
// secret is never reused across orders.
func (e *Engine) Build(a *Attempt, req SwapRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.state {
	case Idle, Built, Signed:
	default:
		return &TransitionError{Op: "build", From: a.state}
	}
	a.discardLocked()

	makerToken, err := e.tokens.ConfigBySymbol(req.SrcChain, req.SrcToken)
	if err != nil {
		return e.failLocked(a, FailureValidation, &order.ValidationError{Field: "srcToken", Err: err})
	}
	takerToken, err := e.tokens.ConfigBySymbol(req.DstChain, req.DstToken)
	if err != nil {
		return e.failLocked(a, FailureValidation, &order.ValidationError{Field: "dstToken", Err: err})
	}

	maker := e.signer.Address()
	receiver := req.Receiver
	if receiver == "" {
		// self-custody default: destination-chain wallet, else the maker
		if addr, ok := e.wallets.Address(req.DstChain); ok {
			receiver = addr
		} else {
			receiver = maker
		}
	}

	ord, err := e.builder.Build(order.Input{
		MakerAsset: order.AssetRef{
			Chain:     req.SrcChain,
			Symbol:    req.SrcToken,
			OnChainID: makerToken.OnChainID,
			Decimals:  makerToken.Decimals,
		},
		TakerAsset: order.AssetRef{
			Chain:     req.DstChain,
			Symbol:    req.DstToken,
			OnChainID: takerToken.OnChainID,
			Decimals:  takerToken.Decimals,
		},
		MakingAmount: req.MakingAmount,
		TakingAmount: req.TakingAmount,
		Maker:        maker,
		Receiver:     receiver,
		MakerTraits:  req.MakerTraits,
	})
	if err != nil {
		var validationErr *order.ValidationError
		if errors.As(err, &validationErr) {
			return e.failLocked(a, FailureValidation, err)
		}
		// salt entropy failure, nothing the user can correct
		return e.failLocked(a, FailureInternal, err)
	}

	secret, err := order.GenerateSecret(e.rand)
	if err != nil {
		return e.failLocked(a, FailureInternal, err)
	}

	orderHash, err := ord.Hash()
	if err != nil {
		return e.failLocked(a, FailureInternal, err)
	}

	a.srcChain = req.SrcChain
	a.dstChain = req.DstChain
	a.secret = secret
	a.secretHash = secret.Hash()
	a.ord = ord
	a.orderHash = orderHash
	a.quoteID = relayer.NewQuoteID()
	a.state = Built

	e.metrics.OrderBuilt()
	log.Debug().Str("orderHash", orderHash).Str("quoteId", a.quoteID).Msgf("Built order %s -> %s", req.SrcChain, req.DstChain)
	return nil
}

// Sign produces the structured signature and assembles the submission
// envelope. This is the suspension point for external approval; the lock is
// held throughout so a cancelled sign can never leave a half-applied Signed
// state.
func (e *Engine) Sign(ctx context.Context, a *Attempt) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != Built {
		return &TransitionError{Op: "sign", From: a.state}
	}

	if !e.signer.Supports(a.srcChain.Family()) {
		return e.failLocked(a, FailureSigning, signer.ErrUnsupportedSigner)
	}

	sig, err := e.signer.SignOrder(ctx, a.srcChain, a.ord)
	if err != nil {
		return e.failLocked(a, FailureSigning, err)
	}

	a.sig = sig
	a.sub = relayer.NewSubmission(a.ord, a.srcChain, sig, a.quoteID, []order.SecretHash{a.secretHash})
	a.state = Signed

	e.metrics.OrderSigned()
	log.Debug().Str("orderHash", a.orderHash).Msgf("Signed order as %s", e.signer.Address())
	return nil
}

// Submit sends the envelope to the relayer once.
func (e *Engine) Submit(ctx context.Context, a *Attempt) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != Signed {
		return &TransitionError{Op: "submit", From: a.state}
	}

	return e.submitLocked(ctx, a)
}

func (e *Engine) submitLocked(ctx context.Context, a *Attempt) error {
	result, err := e.client.Submit(ctx, a.sub)
	if err != nil {
		if relayer.IsRejected(err) {
			return e.failLocked(a, FailureRejected, err)
		}
		return e.failLocked(a, FailureTransient, err)
	}

	a.result = result
	a.state = Submitted
	e.store.Put(&CrossChainOrderData{
		Submission: a.sub,
		Secret:     a.secret,
		OrderHash:  a.orderHash,
	})

	e.metrics.OrderSubmitted()
	log.Info().Str("orderHash", a.orderHash).Str("quoteId", a.quoteID).Msgf("Order accepted by relayer")
	return nil
}

// Retry resubmits the identical envelope with the identical quoteId. Only
// valid after a transient failure; rejected orders must be rebuilt.
func (e *Engine) Retry(ctx context.Context, a *Attempt) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != Failed || a.failure != FailureTransient {
		return &TransitionError{Op: "retry", From: a.state}
	}

	a.state = Signed
	a.failure = FailureNone
	a.lastErr = nil
	return e.submitLocked(ctx, a)
}

// SubmitWithRetry submits and retries transient failures with exponential
// backoff until maxElapsed or context cancellation. The quoteId stays fixed
// across all attempts.
func (e *Engine) SubmitWithRetry(ctx context.Context, a *Attempt, maxElapsed time.Duration) error {
	err := e.Submit(ctx, a)
	if err == nil || !relayer.IsTransient(err) {
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxElapsed
	return backoff.Retry(func() error {
		err := e.Retry(ctx, a)
		if err == nil {
			return nil
		}
		if relayer.IsTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(b, ctx))
}

// Restart leaves a non-retryable failure. The order content or identity was
// the problem, so everything is discarded and the flow starts over.
func (e *Engine) Restart(a *Attempt) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != Failed {
		return &TransitionError{Op: "restart", From: a.state}
	}

	a.discardLocked()
	a.state = Idle
	return nil
}

// Cancel abandons the attempt from any state and discards the in-flight
// secret.
func (e *Engine) Cancel(a *Attempt) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.discardLocked()
	a.state = Idle
	log.Debug().Msgf("Swap attempt cancelled")
}

func (a *Attempt) discardLocked() {
	if a.secret != nil {
		a.secret.Zero()
		a.secret = nil
	}
	a.secretHash = order.SecretHash{}
	a.ord = nil
	a.orderHash = ""
	a.quoteID = ""
	a.sig = nil
	a.sub = nil
	a.result = nil
	a.failure = FailureNone
	a.lastErr = nil
}

func (e *Engine) failLocked(a *Attempt, kind FailureKind, err error) error {
	a.state = Failed
	a.failure = kind
	a.lastErr = err

	e.metrics.OrderFailed(kind.String())
	log.Warn().Str("orderHash", a.orderHash).Msgf("Swap attempt failed (%s): %s", kind, err)
	return err
}
