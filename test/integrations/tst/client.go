package tst

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
)

type Stats struct {
	Lines  int `json:"lines"`
	Blank  int `json:"blank"`
	Unique int `json:"unique"`
	Bytes  int `json:"bytes"`
}

type Client interface {
	Count(payload string) (Stats, error)
	Health() error
}

type defaultClient struct {
	host   string
	client fasthttp.Client
}

func NewClient(host string) Client {
	return &defaultClient{
		host: host,
	}
}

func (o *defaultClient) Count(payload string) (Stats, error) {
	body, err := o.do(fasthttp.MethodPost, "/", []byte(payload))
	if err != nil {
		return Stats{}, err
	}

	var stats Stats

	err = json.Unmarshal(body, &stats)
	if err != nil {
		return Stats{}, err
	}

	return stats, nil
}

func (o *defaultClient) Health() error {
	_, err := o.do(fasthttp.MethodGet, "/healthz")

	return err
}

func (o *defaultClient) do(method string, path string, body ...[]byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.Header.SetRequestURI(o.host + path)
	req.Header.SetMethod(method)

	if len(body) > 0 {
		req.SetBody(body[0])
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	err := o.client.Do(req, resp)
	if err != nil {
		return nil, err
	}

	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		switch code {
		case fasthttp.StatusInsufficientStorage:
			return nil, ErrOutOfCapacity
		}

		return nil, ErrUnavailable
	}

	respBody := make([]byte, len(resp.Body()))
	copy(respBody, resp.Body())

	return respBody, nil
}
