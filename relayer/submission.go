package relayer

import (
	"github.com/google/uuid"

	"github.com/crossfusion/order-engine/chains"
	"github.com/crossfusion/order-engine/order"
	"github.com/crossfusion/order-engine/signer"
)

const defaultExtension = "0x"

// Submission is the wire envelope accepted by the relayer. Field names are
// part of the relayer API contract.
type Submission struct {
	Order        order.Order    `json:"order"`
	SrcChainID   chains.ChainID `json:"srcChainId"`
	Signature    string         `json:"signature"`
	Extension    string         `json:"extension"`
	QuoteID      string         `json:"quoteId"`
	SecretHashes []string       `json:"secretHashes"`
}

// NewSubmission assembles the envelope for one submission attempt. QuoteID
// identifies the attempt and is reused verbatim on transient retries so the
// relayer can deduplicate.
func NewSubmission(o *order.Order, srcChainID chains.ChainID, sig signer.Signature, quoteID string, secretHashes []order.SecretHash) *Submission {
	hashes := make([]string, 0, len(secretHashes))
	for _, h := range secretHashes {
		hashes = append(hashes, h.Hex())
	}

	return &Submission{
		Order:        *o,
		SrcChainID:   srcChainID,
		Signature:    sig.Hex(),
		Extension:    defaultExtension,
		QuoteID:      quoteID,
		SecretHashes: hashes,
	}
}

// NewQuoteID returns a fresh attempt identifier. Random rather than
// timestamp-based so two attempts in the same tick cannot collide.
func NewQuoteID() string {
	return uuid.NewString()
}
