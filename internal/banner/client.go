package banner

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"coursegraph/internal/assert"
	"coursegraph/internal/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	report_client_submit = "client.submit"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Submitter submits a form (or fetches a page) and returns the raw page.
//
// note: fault injection point
type Submitter interface {
	Submit(ctx context.Context, endpoint string, method Method, params Params) ([]byte, error)
}

// HTTPError is returned for any response with a status >= 400.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, body)
}

type ClientOptions struct {
	// BaseUrl is the url every endpoint is resolved against, it should end
	// with a slash ex. "https://wl11gp.neu.edu/udcprod8/".
	BaseUrl string
	Timeout time.Duration
	// RequestsPerSecond of 0 means no rate limit.
	RequestsPerSecond float64
	UserAgent         string
	CloudflareBypass  bool
	// Dump receives the full text of every exchange, it can be nil.
	Dump telemetry.MessageOutput
}

// Client is the resty backed Submitter.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	tel telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel)
	assert.NotEmptyStr(opts.BaseUrl)

	tel = telemetry.NewScopedAPI("banner", tel)

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !strings.HasSuffix(baseUrl.Path, "/") {
		baseUrl.Path += "/"
	}

	httpClient := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	httpClient.SetCookieJar(jar)
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpClient.SetHeader("user-agent", userAgent)
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = time.Second * 30
	}
	httpClient.SetTimeout(timeout)

	if opts.RequestsPerSecond > 0 {
		// a burst of 1 keeps requests evenly spaced
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel, opts.Dump)

	return &Client{
		BaseUrl: baseUrl,
		Http:    httpClient,
		tel:     tel,
	}, nil
}

// Resolve resolves an endpoint (a form action, which may be relative or
// absolute) against the base url.
func (c *Client) Resolve(endpoint string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("parse endpoint '%s': %w", endpoint, err)
	}
	return c.BaseUrl.ResolveReference(ref), nil
}

// Submit sends the params as a query string for GET and as a form encoded
// body for POST, in both cases in the exact order given.
func (c *Client) Submit(ctx context.Context, endpoint string, method Method, params Params) ([]byte, error) {
	target, err := c.Resolve(endpoint)
	if err != nil {
		c.tel.ReportBroken(report_client_submit, err)
		return nil, err
	}

	req := c.Http.R().SetContext(ctx)

	var res *resty.Response
	switch method {
	case MethodGet, "":
		if len(params) > 0 {
			target.RawQuery = params.Encode()
		}
		res, err = req.Get(target.String())
	case MethodPost:
		res, err = req.
			SetHeader("content-type", "application/x-www-form-urlencoded").
			SetBody(params.Encode()).
			Post(target.String())
	default:
		return nil, fmt.Errorf("unsupported method '%s'", method)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, target.String(), err)
	}

	if res.IsError() {
		httpErr := &HTTPError{
			Method:     string(method),
			URL:        target.String(),
			StatusCode: res.StatusCode(),
			Body:       res.Body(),
		}
		c.tel.ReportBroken(report_client_submit, httpErr)
		return nil, httpErr
	}

	return res.Body(), nil
}
