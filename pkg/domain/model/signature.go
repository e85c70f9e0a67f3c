package model

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/m-mizutani/luna/pkg/domain/types"
)

// SignaturePrefix is the algorithm tag of the X-Hub-Signature-256 header.
const SignaturePrefix = "sha256="

func computeDigest(body []byte, secret types.WebhookSecret) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignPayload returns the X-Hub-Signature-256 header value for body.
func SignPayload(body []byte, secret types.WebhookSecret) string {
	return SignaturePrefix + computeDigest(body, secret)
}

// VerifySignature checks header against the HMAC-SHA256 of the raw body. It fails
// closed: a missing header, another algorithm tag or an empty digest is rejected
// before any HMAC is computed.
func VerifySignature(body []byte, header string, secret types.WebhookSecret) bool {
	digest, ok := strings.CutPrefix(header, SignaturePrefix)
	if !ok {
		return false
	}
	digest = strings.TrimSpace(digest)
	if digest == "" {
		return false
	}

	expected := computeDigest(body, secret)
	if len(expected) != len(digest) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(expected), []byte(digest)) == 1
}
