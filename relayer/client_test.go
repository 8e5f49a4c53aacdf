package relayer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/crossfusion/order-engine/chains"
	"github.com/crossfusion/order-engine/order"
	"github.com/crossfusion/order-engine/relayer"
	"github.com/crossfusion/order-engine/signer"
)

// roundTripperFunc allows mocking HTTP transport
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func testSubmission() *relayer.Submission {
	o := &order.Order{
		Salt:         "618054093042",
		MakerAsset:   "0xA0b86a33E6441b8dB4B2a4B61c4b4b6b4b4b4b4b",
		TakerAsset:   "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7::usdc::USDC",
		Maker:        "0x6C8A0c210C4C097270FA5df9b799d79A6887b11A",
		Receiver:     "0xdba34672e30cb065b1f93e3ab55318768fd6fef66c15942c9f7cb846e2f900e7",
		MakingAmount: "100000000",
		TakingAmount: "99000000",
		MakerTraits:  "0",
	}
	secret := order.Secret{0x01}
	return relayer.NewSubmission(o, chains.EthereumMainnet, signer.Signature{0xAA, 0xBB}, relayer.NewQuoteID(), []order.SecretHash{secret.Hash()})
}

func Test_Submit_Classification(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		body          []byte
		transportErr  error
		wantTransient bool
		wantRejected  bool
		wantResult    *relayer.SubmitResult
	}{
		{
			name:       "accepted",
			statusCode: http.StatusCreated,
			body:       []byte(`{"orderHash": "0x123", "status": "accepted"}`),
			wantResult: &relayer.SubmitResult{OrderHash: "0x123", Status: "accepted"},
		},
		{
			name:       "accepted with empty body",
			statusCode: http.StatusOK,
			body:       []byte{},
			wantResult: &relayer.SubmitResult{},
		},
		{
			name:         "rejected",
			statusCode:   http.StatusBadRequest,
			body:         []byte(`{"code": 400, "reason": "unsupported asset"}`),
			wantRejected: true,
		},
		{
			name:          "server error",
			statusCode:    http.StatusServiceUnavailable,
			body:          []byte("unavailable"),
			wantTransient: true,
		},
		{
			name:          "transport error",
			transportErr:  errors.New("connection refused"),
			wantTransient: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := relayer.NewClient("http://relayer.test", time.Second)
			client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				if req.URL.Path != relayer.SubmitPath {
					t.Fatalf("unexpected path %s", req.URL.Path)
				}
				if tt.transportErr != nil {
					return nil, tt.transportErr
				}
				return &http.Response{
					StatusCode: tt.statusCode,
					Body:       io.NopCloser(bytes.NewReader(tt.body)),
				}, nil
			})

			result, err := client.Submit(context.Background(), testSubmission())

			if tt.wantTransient {
				if !relayer.IsTransient(err) {
					t.Fatalf("expected transient error, got %v", err)
				}
				return
			}
			if tt.wantRejected {
				var rejected *relayer.RejectedError
				if !errors.As(err, &rejected) {
					t.Fatalf("expected rejected error, got %v", err)
				}
				if rejected.Reason != "unsupported asset" {
					t.Fatalf("expected reason from body, got %q", rejected.Reason)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *result != *tt.wantResult {
				t.Fatalf("expected %+v, got %+v", tt.wantResult, result)
			}
		})
	}
}

// The envelope field names are part of the relayer API contract.
func Test_Submit_WireFormat(t *testing.T) {
	var captured map[string]json.RawMessage

	client := relayer.NewClient("http://relayer.test", time.Second)
	client.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		if err := json.Unmarshal(body, &captured); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		return &http.Response{
			StatusCode: http.StatusCreated,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{}`))),
		}, nil
	})

	_, err := client.Submit(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, field := range []string{"order", "srcChainId", "signature", "extension", "quoteId", "secretHashes"} {
		if _, ok := captured[field]; !ok {
			t.Fatalf("missing field %q in submission payload", field)
		}
	}

	var orderFields map[string]json.RawMessage
	if err := json.Unmarshal(captured["order"], &orderFields); err != nil {
		t.Fatalf("invalid order payload: %v", err)
	}
	for _, field := range []string{"salt", "makerAsset", "takerAsset", "maker", "receiver", "makingAmount", "takingAmount", "makerTraits"} {
		if _, ok := orderFields[field]; !ok {
			t.Fatalf("missing field %q in order payload", field)
		}
	}
}

func Test_NewQuoteID_Unique(t *testing.T) {
	if relayer.NewQuoteID() == relayer.NewQuoteID() {
		t.Fatal("quote ids must be unique per attempt")
	}
}
