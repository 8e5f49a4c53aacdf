package signer

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/crossfusion/order-engine/chains"
	"github.com/crossfusion/order-engine/order"
)

var ErrUnsupportedSigner = errors.New("signing identity does not support structured signatures for this chain family")

// Signature is a 65-byte r||s||v secp256k1 signature with v in {27, 28}.
type Signature []byte

func (s Signature) Hex() string {
	return fmt.Sprintf("0x%x", []byte(s))
}

// Signer is the external signing capability. Implementations may suspend on
// user approval, so SignOrder takes a context and must honor cancellation.
//
//go:generate mockgen -source=signer.go -destination=./mock/signer.go -package=mock_signer
type Signer interface {
	Address() string
	Supports(family chains.Family) bool
	SignOrder(ctx context.Context, srcChainID chains.ChainID, o *order.Order) (Signature, error)
}

// LocalKeySigner signs order digests with an in-process ECDSA key. It only
// produces EVM-family structured signatures.
type LocalKeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewLocalKeySigner(hexKey string) (*LocalKeySigner, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}

	return &LocalKeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func NewLocalKeySignerFromKey(key *ecdsa.PrivateKey) *LocalKeySigner {
	return &LocalKeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

func (s *LocalKeySigner) Address() string {
	return s.address.Hex()
}

func (s *LocalKeySigner) Supports(family chains.Family) bool {
	return family == chains.FamilyEVM
}

func (s *LocalKeySigner) SignOrder(ctx context.Context, srcChainID chains.ChainID, o *order.Order) (Signature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.Supports(srcChainID.Family()) {
		return nil, ErrUnsupportedSigner
	}

	digest, err := OrderDigest(srcChainID, o)
	if err != nil {
		return nil, fmt.Errorf("failed to hash order: %w", err)
	}

	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign order: %w", err)
	}
	sig[64] += 27

	return sig, nil
}

// VerifyOrderSignature verifies that the signature over the order digest was
// made by the maker. Needs no secret material.
func VerifyOrderSignature(srcChainID chains.ChainID, o *order.Order, signature Signature, maker string) (bool, error) {
	if len(signature) != crypto.SignatureLength {
		return false, fmt.Errorf("invalid signature length %d", len(signature))
	}

	digest, err := OrderDigest(srcChainID, o)
	if err != nil {
		return false, err
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	pubkey, err := crypto.Ecrecover(digest, sig)
	if err != nil {
		return false, fmt.Errorf("ecrecover: %v", err)
	}
	pk, err := crypto.UnmarshalPubkey(pubkey)
	if err != nil {
		return false, err
	}
	recovered := crypto.PubkeyToAddress(*pk)

	expected := common.HexToAddress(maker)
	return bytes.Equal(expected[:], recovered[:]), nil
}
