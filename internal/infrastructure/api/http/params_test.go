package http

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialFromRequest(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"api key", map[string]string{APIKeyHeader: "key-1"}, "key-1"},
		{"bearer", map[string]string{AuthorizationHeader: "Bearer key-1"}, "key-1"},
		{"bearer lowercase", map[string]string{AuthorizationHeader: "bearer  key-1 "}, "key-1"},
		{"api key wins", map[string]string{APIKeyHeader: "key-1", AuthorizationHeader: "Bearer key-2"}, "key-1"},
		{"basic is ignored", map[string]string{AuthorizationHeader: "Basic a2V5LTE="}, ""},
		{"scheme only", map[string]string{AuthorizationHeader: "Bearer"}, ""},
		{"none", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/balance", nil)
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, CredentialFromRequest(r))
		})
	}
}

func TestAccountIDContext(t *testing.T) {
	assert.Equal(t, "", AccountID(context.Background()))
	assert.Equal(t, "acct-1", AccountID(WithAccountID(context.Background(), "acct-1")))
}
