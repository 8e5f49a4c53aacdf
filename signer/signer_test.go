package signer_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/crossfusion/order-engine/chains"
	"github.com/crossfusion/order-engine/order"
	"github.com/crossfusion/order-engine/signer"
)

func sampleOrder() *order.Order {
	return &order.Order{
		Salt:         "618054093042",
		MakerAsset:   "0xA0b86a33E6441b8dB4B2a4B61c4b4b6b4b4b4b4b",
		TakerAsset:   "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC",
		Maker:        "0x6C8A0c210C4C097270FA5df9b799d79A6887b11A",
		Receiver:     "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7",
		MakingAmount: "100000000",
		TakingAmount: "99000000",
		MakerTraits:  "0",
	}
}

func newTestSigner(t *testing.T) *signer.LocalKeySigner {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return signer.NewLocalKeySignerFromKey(key)
}

func Test_SignOrder_VerifiesAgainstMaker(t *testing.T) {
	s := newTestSigner(t)
	o := sampleOrder()
	o.Maker = s.Address()

	sig, err := s.SignOrder(context.Background(), chains.EthereumMainnet, o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := signer.VerifyOrderSignature(chains.EthereumMainnet, o, sig, o.Maker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("signature must verify against the maker")
	}
}

func Test_SignOrder_DomainSeparation(t *testing.T) {
	s := newTestSigner(t)
	o := sampleOrder()
	o.Maker = s.Address()

	sig, err := s.SignOrder(context.Background(), chains.EthereumMainnet, o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// identical economic terms, different salt
	other := *o
	other.Salt = "618054093043"
	ok, err := signer.VerifyOrderSignature(chains.EthereumMainnet, &other, sig, o.Maker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("signature must not verify against a different order")
	}

	// same order hashed in a different chain context
	ok, err = signer.VerifyOrderSignature(chains.SuiMainnet, o, sig, o.Maker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("signature must not verify under a different domain")
	}
}

func Test_SignOrder_WrongMaker(t *testing.T) {
	s := newTestSigner(t)
	o := sampleOrder()
	o.Maker = s.Address()

	sig, err := s.SignOrder(context.Background(), chains.EthereumMainnet, o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := signer.VerifyOrderSignature(chains.EthereumMainnet, o, sig, "0x6C8A0c210C4C097270FA5df9b799d79A6887b11A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("signature must not verify against a different address")
	}
}

func Test_SignOrder_UnsupportedChainFamily(t *testing.T) {
	s := newTestSigner(t)

	if s.Supports(chains.FamilySui) {
		t.Fatal("local key signer must not claim sui support")
	}

	_, err := s.SignOrder(context.Background(), chains.SuiMainnet, sampleOrder())
	if err != signer.ErrUnsupportedSigner {
		t.Fatalf("expected ErrUnsupportedSigner, got %v", err)
	}
}

func Test_SignOrder_CancelledContext(t *testing.T) {
	s := newTestSigner(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SignOrder(ctx, chains.EthereumMainnet, sampleOrder())
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func Test_VerifyOrderSignature_InvalidLength(t *testing.T) {
	_, err := signer.VerifyOrderSignature(chains.EthereumMainnet, sampleOrder(), []byte{0x01}, "0x6C8A0c210C4C097270FA5df9b799d79A6887b11A")
	if err == nil {
		t.Fatal("expected error for malformed signature")
	}
}
