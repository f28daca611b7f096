package aws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningTransportSignsRequests(t *testing.T) {
	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{
		Transport: NewSigningTransport("AKIDEXAMPLE", "secret", "us-west-2"),
	}

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/universities/_search", strings.NewReader(`{"query":{}}`))
	require.NoError(t, err)

	res, err := client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Contains(t, authHeader, "AWS4-HMAC-SHA256")
	assert.Contains(t, authHeader, "AKIDEXAMPLE")
	assert.Contains(t, authHeader, "us-west-2/es/aws4_request")
}

func TestSigningTransportMissingCredentials(t *testing.T) {
	client := &http.Client{
		Transport: NewSigningTransport("", "", "us-west-2"),
	}

	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:1/universities/_search", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "credentials")
}
