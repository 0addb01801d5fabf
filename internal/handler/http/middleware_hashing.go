package http

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/mkarev/vault-sync/internal/utils"
)

// checkHash verifies the request body integrity signature carried in the
// HashSHA256 header. The signature is an HMAC-SHA256 of the raw body,
// keyed with the shared hash key, hex-encoded.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", "*Handler.checkHash").Msg("checking hash begins")

		headerHash := r.Header.Get(utils.HashHeader)
		if headerHash == "" {
			h.logger.Error().Str("func", "*Handler.checkHash").Msg("missing body hash header")
			http.Error(w, "missing body hash header", http.StatusBadRequest)
			return
		}

		expected, err := hex.DecodeString(headerHash)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.checkHash").Msg("malformed body hash header")
			http.Error(w, "malformed body hash header", http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !hmac.Equal(utils.Hash(body), expected) {
			h.logger.Error().Str("func", "*Handler.checkHash").Msg("body hash mismatch")
			http.Error(w, "body hash mismatch", http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.checkHash").Msg("hash verified")
		next.ServeHTTP(w, r)
	})
}
