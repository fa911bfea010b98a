package authcode

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateReference(t *testing.T) {
	cases := []struct {
		name        string
		in          Input
		wantContent string
		wantCode    string
	}{
		{
			name: "empty GET",
			in: Input{
				AccessID: "ID1", AccessKey: "KEY1", Method: "GET",
				Nonce: "N1", Timestamp: 1000, Params: map[string]any{},
			},
			wantContent: "GET-",
			wantCode:    "accessId=ID1&nonce=N1&timestamp=1000&signature=wpXRLlcDD64L3UwHOxCBLD75hiA%3D",
		},
		{
			name: "empty POST lowercase method",
			in: Input{
				AccessID: "ID1", AccessKey: "KEY1", Method: "post",
				Nonce: "N1", Timestamp: 1000,
			},
			wantContent: "POST-",
			wantCode:    "accessId=ID1&nonce=N1&timestamp=1000&signature=I1CH7w0SwVwFj%2B7h8g5SfLFZIBU%3D",
		},
		{
			name: "mixed parameters",
			in: Input{
				AccessID: "EUqV2yIU", AccessKey: "secretKey", Method: "GET",
				Nonce: "B2d1a32w112a3ldkKDKNEN", Timestamp: 1501661974308,
				Params: map[string]any{
					"pageNum":      0,
					"deviceId":     8,
					"name":         "a b/c",
					"ids":          []string{"x", "y"},
					"sessionToken": "tok",
					"empty":        "",
					"missing":      nil,
				},
			},
			wantContent: "GET-deviceId=8&ids=%5B%22x%22%2C%22y%22%5D&name=a%20b%2Fc&pageNum=0",
			wantCode:    "accessId=EUqV2yIU&nonce=B2d1a32w112a3ldkKDKNEN&timestamp=1501661974308&signature=IVbYesX1frIu6JlC6lhqdkaRFpI%3D",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Generate(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.wantContent, res.Content)
			require.Equal(t, tc.wantCode, res.AuthCode)
			require.True(t, strings.HasPrefix(res.AuthCode, res.Prefix+"&signature="))
		})
	}
}

func TestGenerateMatchesIndependentHMAC(t *testing.T) {
	mac := func(key, msg string) string {
		h := hmac.New(sha1.New, []byte(key))
		h.Write([]byte(msg))
		return base64.StdEncoding.EncodeToString(h.Sum(nil))
	}
	prefix := "accessId=ID1&nonce=N1&timestamp=1000"
	want := mac(mac("KEY1", prefix), "GET-")

	res, err := Generate(Input{AccessID: "ID1", AccessKey: "KEY1", Method: "GET", Nonce: "N1", Timestamp: 1000})
	require.NoError(t, err)
	require.Equal(t, prefix, res.Prefix)
	require.Equal(t, want, res.Signature)
}

func TestGenerateDeterministic(t *testing.T) {
	in := Input{
		AccessID: "ID1", AccessKey: "KEY1", Method: "PUT", Nonce: "N1", Timestamp: 1000,
		Params: map[string]any{"b": "2", "a": "1", "obj": map[string]any{"k": []int{1}}},
	}
	first, err := Generate(in)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Generate(in)
		require.NoError(t, err)
		require.Equal(t, first.AuthCode, again.AuthCode)
	}
	require.Equal(t, "PUT-a=1&b=2&obj=%7B%22k%22%3A%5B1%5D%7D", first.Content)
}

func TestContentRules(t *testing.T) {
	cases := []struct {
		name   string
		method string
		params map[string]any
		want   string
	}{
		{"canonical ordering", "GET", map[string]any{"b": "2", "a": "1"}, "GET-a=1&b=2"},
		{"falsy skipped", "GET", map[string]any{"a": "", "b": nil, "c": false}, "GET-"},
		{"numeric zero kept", "GET", map[string]any{"a": 0, "b": 0.0}, "GET-a=0&b=0"},
		{"true kept", "DELETE", map[string]any{"flag": true}, "DELETE-flag=true"},
		{"empty array kept as JSON", "GET", map[string]any{"a": []string{}}, "GET-a=%5B%5D"},
		{"session token stripped", "GET", map[string]any{"sessionToken": "x", "a": "1"}, "GET-a=1"},
		{"code point order", "GET", map[string]any{"a": "1", "B": "2", "_": "3"}, "GET-B=2&_=3&a=1"},
		{"typed nil skipped", "GET", map[string]any{"beginTime": (*time.Time)(nil), "a": "1"}, "GET-a=1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Content(tc.method, tc.params)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSessionTokenExclusion(t *testing.T) {
	base := Input{AccessID: "ID1", AccessKey: "KEY1", Method: "GET", Nonce: "N1", Timestamp: 1000}

	with := base
	with.Params = map[string]any{"deviceId": "d1", "sessionToken": "secret-session"}
	without := base
	without.Params = map[string]any{"deviceId": "d1"}

	a, err := Generate(with)
	require.NoError(t, err)
	b, err := Generate(without)
	require.NoError(t, err)
	require.Equal(t, b.AuthCode, a.AuthCode)
}

func TestMethodBinding(t *testing.T) {
	params := map[string]any{"a": "1"}
	get, err := Generate(Input{AccessID: "ID1", AccessKey: "KEY1", Method: "GET", Nonce: "N1", Timestamp: 1000, Params: params})
	require.NoError(t, err)
	post, err := Generate(Input{AccessID: "ID1", AccessKey: "KEY1", Method: "POST", Nonce: "N1", Timestamp: 1000, Params: params})
	require.NoError(t, err)

	require.Equal(t, strings.TrimPrefix(get.Content, "GET"), strings.TrimPrefix(post.Content, "POST"))
	require.NotEqual(t, get.Signature, post.Signature)
}

func TestGenerateSynthesizesNonceAndTimestamp(t *testing.T) {
	a, err := Generate(Input{AccessID: "ID1", AccessKey: "KEY1", Method: "GET"})
	require.NoError(t, err)
	b, err := Generate(Input{AccessID: "ID1", AccessKey: "KEY1", Method: "GET"})
	require.NoError(t, err)

	require.NotEmpty(t, a.Nonce)
	require.NotEqual(t, a.Nonce, b.Nonce)
	require.NotZero(t, a.Timestamp)
}

func TestNewNonceConcurrent(t *testing.T) {
	const n = 64
	var (
		mu   sync.Mutex
		seen = make(map[string]bool, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nonce := NewNonce()
			mu.Lock()
			defer mu.Unlock()
			seen[nonce] = true
		}()
	}
	wg.Wait()
	require.Len(t, seen, n)
}

func TestContentSerializationError(t *testing.T) {
	_, err := Content("GET", map[string]any{"bad": []any{make(chan int)}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad")
}

func TestParseAndVerify(t *testing.T) {
	params := map[string]any{"deviceId": "8", "pageNum": "0"}
	res, err := Generate(Input{AccessID: "EUqV2yIU", AccessKey: "secretKey", Method: "GET", Nonce: "n-1", Timestamp: 42, Params: params})
	require.NoError(t, err)

	f, err := Parse(res.AuthCode)
	require.NoError(t, err)
	require.Equal(t, &Fields{AccessID: "EUqV2yIU", Nonce: "n-1", Timestamp: 42, Signature: res.Signature}, f)

	ok, err := Verify(f, "secretKey", "get", params)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Verify(f, "wrongKey", "GET", params)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = Verify(f, "secretKey", "GET", map[string]any{"deviceId": "9", "pageNum": "0"})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"accessId=a&nonce=n&timestamp=1",
		"accessId=a&nonce=n&timestamp=x&signature=s",
		"accessId=a&nonce=n&timestamp=1&signature=s&extra=1",
		"accessId=a&accessId=b&nonce=n&timestamp=1&signature=s",
		"accessId=a&nonce=n&timestamp=1&signature=%zz",
		"accessId",
	}
	for _, authCode := range cases {
		if _, err := Parse(authCode); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", authCode)
		}
	}
}

func TestRedact(t *testing.T) {
	require.Equal(t,
		"accessId=ID1&nonce=N1&timestamp=1000&signature=<redacted>",
		Redact("accessId=ID1&nonce=N1&timestamp=1000&signature=wpXRLlcDD64L3UwHOxCBLD75hiA%3D"))
	require.Equal(t, "no signature here", Redact("no signature here"))
}
