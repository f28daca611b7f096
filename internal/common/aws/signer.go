// internal/common/aws/signer.go
package aws

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"

	commonerrors "admissions-skill/internal/common/errors"
)

// SearchServiceName is the SigV4 service identifier for the managed search
// domain.
const SearchServiceName = "es"

// SigningTransport is an http.RoundTripper that signs every outbound request
// with AWS Signature V4 before handing it to the wrapped transport. It lets
// the stock Elasticsearch client talk to a credential-gated search domain.
type SigningTransport struct {
	signer  *v4.Signer
	creds   aws.Credentials
	region  string
	service string
	base    http.RoundTripper
}

// NewSigningTransport creates a transport signing for the search service in
// the given region. Empty credentials are tolerated here; the first RoundTrip
// reports them, so a misconfigured deployment fails on use rather than boot.
func NewSigningTransport(accessKey, secretKey, region string) *SigningTransport {
	provider := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
	creds, _ := provider.Retrieve(context.Background())

	return &SigningTransport{
		signer:  v4.NewSigner(),
		creds:   creds,
		region:  region,
		service: SearchServiceName,
		base:    http.DefaultTransport,
	}
}

func (t *SigningTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.creds.HasKeys() {
		return nil, commonerrors.NewSearchCredentialsMissingError()
	}

	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body for signing: %w", err)
		}
		req.Body.Close()
		body = b
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	sum := sha256.Sum256(body)
	if err := t.signer.SignHTTP(req.Context(), t.creds, req, hex.EncodeToString(sum[:]), t.service, t.region, time.Now()); err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	return t.base.RoundTrip(req)
}
