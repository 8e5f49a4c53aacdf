package order

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/crossfusion/order-engine/chains"
)

const defaultMakerTraits = "0"

var (
	ErrEmptyMaker    = errors.New("maker is required")
	ErrEmptyReceiver = errors.New("receiver is required")
)

// ValidationError names the input field at fault so callers can surface a
// precise message.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Input carries the user selections for one order. Receiver must already be
// resolved by the caller; the builder never defaults it silently.
type Input struct {
	MakerAsset   AssetRef
	TakerAsset   AssetRef
	MakingAmount string
	TakingAmount string
	Maker        string
	Receiver     string
	MakerTraits  string
}

// Builder assembles canonical orders. Pure aside from salt randomness.
type Builder struct {
	rand io.Reader
}

func NewBuilder(rand io.Reader) *Builder {
	return &Builder{rand: rand}
}

func (b *Builder) Build(input Input) (*Order, error) {
	if input.Maker == "" {
		return nil, &ValidationError{Field: "maker", Err: ErrEmptyMaker}
	}
	if err := chains.ValidateAddress(input.MakerAsset.Chain.Family(), input.Maker); err != nil {
		return nil, &ValidationError{Field: "maker", Err: err}
	}
	if input.Receiver == "" {
		return nil, &ValidationError{Field: "receiver", Err: ErrEmptyReceiver}
	}
	if err := chains.ValidateAddress(input.TakerAsset.Chain.Family(), input.Receiver); err != nil {
		return nil, &ValidationError{Field: "receiver", Err: err}
	}

	makingAmount, err := ToBaseUnits(input.MakingAmount, input.MakerAsset.Decimals)
	if err != nil {
		return nil, &ValidationError{Field: "makingAmount", Err: err}
	}
	takingAmount, err := ToBaseUnits(input.TakingAmount, input.TakerAsset.Decimals)
	if err != nil {
		return nil, &ValidationError{Field: "takingAmount", Err: err}
	}

	salt, err := b.generateSalt()
	if err != nil {
		return nil, err
	}

	makerTraits := input.MakerTraits
	if makerTraits == "" {
		// opaque settlement-contract flags, passed through untouched
		makerTraits = defaultMakerTraits
	}

	return &Order{
		Salt:         salt,
		MakerAsset:   input.MakerAsset.OnChainID,
		TakerAsset:   input.TakerAsset.OnChainID,
		Maker:        input.Maker,
		Receiver:     input.Receiver,
		MakingAmount: makingAmount,
		TakingAmount: takingAmount,
		MakerTraits:  makerTraits,
	}, nil
}

// generateSalt draws 16 random bytes and renders them as a decimal string.
// Uniqueness per order is the requirement; it prevents signature replay
// across orders with identical economic terms.
func (b *Builder) generateSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := io.ReadFull(b.rand, buf); err != nil {
		return "", fmt.Errorf("failed to read salt entropy: %w", err)
	}

	return new(big.Int).SetBytes(buf).String(), nil
}
