package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
)

const (
	HeaderAccept     = "accept"
	HeaderUserAgent  = "user-agent"
	MimeTypeJSON     = "application/json"
	DefaultUserAgent = "card-stacks-go/1.0"
)

type Response struct {
	Body        io.ReadCloser
	ContentType string
}

func NewGetOpts() GetOptions {
	return GetOptions{
		Header:      make(map[string]string),
		StatusCodes: []int{http.StatusOK},
	}
}

type GetOptions struct {
	Header      map[string]string
	StatusCodes []int
}

func (o GetOptions) WithHeader(k, v string) GetOptions {
	o.Header[k] = v

	return o
}

func (o GetOptions) WithExpectedCodes(statusCode ...int) GetOptions {
	o.StatusCodes = statusCode

	return o
}

type Client interface {
	Get(ctx context.Context, url string, opts GetOptions) (*Response, error)
}

func NewClient(client *http.Client) Client {
	if client == nil {
		panic("missing net/http client")
	}

	return &httpClient{
		client: client,
	}
}

type httpClient struct {
	client *http.Client
}

func (c *httpClient) Get(ctx context.Context, url string, opts GetOptions) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed for url %s, %w", url, err)
	}

	req.Header.Set(HeaderUserAgent, DefaultUserAgent)
	for k, v := range opts.Header {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request execution failed for url %s, %w", url, err)
	}

	if !slices.Contains(opts.StatusCodes, resp.StatusCode) {
		defer resp.Body.Close()

		return nil, NewHTTPErr(url, resp)
	}

	return &Response{
		Body:        resp.Body,
		ContentType: resp.Header.Get("content-type"),
	}, nil
}
