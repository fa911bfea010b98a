// Package authcode computes and checks the authCode header sent with every
// BaaS API request.
//
// An authCode has the form
//
//	accessId=<id>&nonce=<nonce>&timestamp=<ms>&signature=<sig>
//
// where sig is derived in two HMAC-SHA1 steps. The prefix (the first three
// pairs, in that fixed order) is signed with the access key; the Base64 of
// that MAC is the signing key. The signing key then signs the canonical
// content "METHOD-k1=v1&k2=v2..." built from the path and query parameters,
// and the Base64 of the result, percent-encoded, is the signature.
package authcode

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Angies2/baas-sdk-go/internal/jsval"
)

// SessionTokenParam is never part of the signed parameter set.
const SessionTokenParam = "sessionToken"

const redacted = "<redacted>"

// Input carries everything the signature is bound to.
type Input struct {
	AccessID  string
	AccessKey string

	// Method is the HTTP method; case does not matter.
	Method string

	// Params are the path and query parameters of the request.
	Params map[string]any

	// Nonce and Timestamp (milliseconds since epoch) are synthesized
	// when empty or zero.
	Nonce     string
	Timestamp int64
}

// Result is a computed authCode together with its intermediate strings.
// The signing key is deliberately not exposed.
type Result struct {
	Nonce     string
	Timestamp int64

	// Prefix is "accessId=...&nonce=...&timestamp=...".
	Prefix string

	// Content is the canonical string that was signed.
	Content string

	// Signature is the Base64 MAC before percent-encoding.
	Signature string

	// AuthCode is the header value.
	AuthCode string
}

// NewNonce returns a time-ordered (version 1) UUID. It falls back to a
// random UUID when the clock sequence cannot be initialised.
func NewNonce() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Prefix builds the unsorted accessId/nonce/timestamp prefix.
func Prefix(accessID, nonce string, timestamp int64) string {
	return "accessId=" + accessID + "&nonce=" + nonce + "&timestamp=" + strconv.FormatInt(timestamp, 10)
}

// Content builds the canonical signature content for method and params.
//
// sessionToken is dropped, keys are sorted, arrays and objects are replaced
// by their JSON text, and keys whose value is falsy are skipped unless the
// value is a number. An empty parameter set yields "METHOD-".
func Content(method string, params map[string]any) (string, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == SessionTokenParam {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v := params[k]
		if jsval.IsComposite(v) {
			s, err := jsval.Marshal(v)
			if err != nil {
				return "", fmt.Errorf("failed to serialize parameter %s: %w", k, err)
			}
			v = s
		}
		if !jsval.Truthy(v) && !jsval.IsNumber(v) {
			continue
		}
		pairs = append(pairs, k+"="+jsval.EncodeURIComponent(jsval.String(v)))
	}
	return strings.ToUpper(method) + "-" + strings.Join(pairs, "&"), nil
}

func mac(key, message string) string {
	h := hmac.New(sha1.New, []byte(key))
	h.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Sign returns the Base64 signature of content for the given prefix and
// access key.
func Sign(accessKey, prefix, content string) string {
	signingKey := mac(accessKey, prefix)
	return mac(signingKey, content)
}

// Generate computes the authCode for in.
func Generate(in Input) (*Result, error) {
	nonce := in.Nonce
	if nonce == "" {
		nonce = NewNonce()
	}
	timestamp := in.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	prefix := Prefix(in.AccessID, nonce, timestamp)
	content, err := Content(in.Method, in.Params)
	if err != nil {
		return nil, err
	}
	signature := Sign(in.AccessKey, prefix, content)
	return &Result{
		Nonce:     nonce,
		Timestamp: timestamp,
		Prefix:    prefix,
		Content:   content,
		Signature: signature,
		AuthCode:  prefix + "&signature=" + jsval.EncodeURIComponent(signature),
	}, nil
}

// Fields are the parts of a received authCode.
type Fields struct {
	AccessID  string
	Nonce     string
	Timestamp int64

	// Signature is percent-decoded.
	Signature string
}

// Parse splits an authCode header value into its fields.
func Parse(authCode string) (*Fields, error) {
	var f Fields
	seen := make(map[string]bool, 4)
	for _, pair := range strings.Split(authCode, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed authCode pair %q", pair)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate authCode field %q", key)
		}
		seen[key] = true
		switch key {
		case "accessId":
			f.AccessID = value
		case "nonce":
			f.Nonce = value
		case "timestamp":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad authCode timestamp %q: %w", value, err)
			}
			f.Timestamp = ts
		case "signature":
			sig, err := url.PathUnescape(value)
			if err != nil {
				return nil, fmt.Errorf("bad authCode signature encoding: %w", err)
			}
			f.Signature = sig
		default:
			return nil, fmt.Errorf("unknown authCode field %q", key)
		}
	}
	for _, key := range []string{"accessId", "nonce", "timestamp", "signature"} {
		if !seen[key] {
			return nil, fmt.Errorf("authCode has no %s", key)
		}
	}
	return &f, nil
}

// Verify recomputes the signature from f, the access key and the request
// parameters and compares it with the received one in constant time.
func Verify(f *Fields, accessKey, method string, params map[string]any) (bool, error) {
	content, err := Content(method, params)
	if err != nil {
		return false, err
	}
	want := Sign(accessKey, Prefix(f.AccessID, f.Nonce, f.Timestamp), content)
	return hmac.Equal([]byte(want), []byte(f.Signature)), nil
}

// Redact replaces the signature of an authCode so it can be logged.
func Redact(authCode string) string {
	i := strings.Index(authCode, "signature=")
	if i < 0 {
		return authCode
	}
	return authCode[:i] + "signature=" + redacted
}
