package mock

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/rendau/webtools/adapters/client/httpc"
	"github.com/rendau/webtools/adapters/logger"
	"github.com/rendau/webtools/errs"
)

type St struct {
	lg logger.Lite

	requests  []*RequestSt
	responses map[string]ResponseSt
	mu        sync.Mutex
}

var _ httpc.HttpC = (*St)(nil)

type RequestSt struct {
	Method string
	Uri    string
	Opts   httpc.OptionsSt
	Raw    []byte
}

type ResponseSt struct {
	StatusCode int
	Obj        any
	Raw        []byte
	Err        error
}

func New(lg logger.Lite) *St {
	return &St{
		lg: lg,

		requests:  []*RequestSt{},
		responses: map[string]ResponseSt{},
	}
}

func (c *St) SetResponses(responses map[string]ResponseSt) {
	c.mu.Lock()
	c.responses = map[string]ResponseSt{}
	c.mu.Unlock()

	for k, v := range responses {
		c.SetResponse(k, v)
	}
}

func (c *St) SetResponse(uri string, response ResponseSt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(response.Raw) == 0 && response.Obj != nil {
		var err error

		response.Raw, err = json.Marshal(response.Obj)
		if err != nil {
			c.lg.Errorw("Fail to marshal json", err)
		}
	}

	if response.StatusCode == 0 {
		response.StatusCode = http.StatusOK
	}

	c.responses[uri] = response
}

func (c *St) GetOptions() httpc.OptionsSt {
	return httpc.OptionsSt{}
}

func (c *St) Get(_ context.Context, uri string, opts httpc.OptionsSt) (string, error) {
	response, err := c.send(http.MethodGet, uri, nil, opts)
	if err != nil {
		return "", err
	}

	if response.StatusCode != http.StatusOK {
		return "", errs.New(errs.Rejected, "", errs.StatusErr{Code: response.StatusCode, Body: string(response.Raw)})
	}

	return string(response.Raw), nil
}

func (c *St) Post(_ context.Context, uri string, params map[string]any, opts httpc.OptionsSt) (*http.Response, error) {
	if params == nil {
		return nil, errs.New(errs.InvalidInput, "params must be a map", nil)
	}

	reqBody, err := json.Marshal(params)
	if err != nil {
		return nil, errs.New(errs.InvalidInput, "fail to marshal json", err)
	}

	response, err := c.send(http.MethodPost, uri, reqBody, opts)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 400 {
		return nil, errs.New(errs.Rejected, "", errs.StatusErr{Code: response.StatusCode, Body: string(response.Raw)})
	}

	return &http.Response{
		StatusCode: response.StatusCode,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(response.Raw)),
	}, nil
}

func (c *St) PostJson(ctx context.Context, uri string, params map[string]any, repObj any, opts httpc.OptionsSt) ([]byte, error) {
	rep, err := c.Post(ctx, uri, params, opts)
	if err != nil {
		return nil, err
	}
	defer rep.Body.Close()

	repBody, err := io.ReadAll(rep.Body)
	if err != nil {
		return nil, err
	}

	if len(repBody) > 0 && repObj != nil {
		if err = json.Unmarshal(repBody, repObj); err != nil {
			return nil, errs.New(errs.DecodeFailed, "fail to unmarshal body", err)
		}
	}

	return repBody, nil
}

func (c *St) send(method, uri string, reqBody []byte, opts httpc.OptionsSt) (ResponseSt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = append(c.requests, &RequestSt{
		Method: method,
		Uri:    uri,
		Opts:   opts,
		Raw:    reqBody,
	})

	response, ok := c.responses[uri]
	if !ok {
		c.lg.Infow("Httpc-mock, uri not found", "uri", uri)
		return ResponseSt{}, errs.New(errs.Rejected, "", errs.StatusErr{Code: http.StatusNotFound})
	}

	if response.Err != nil {
		return ResponseSt{}, response.Err
	}

	return response, nil
}

func (c *St) GetRequests() []*RequestSt {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*RequestSt, len(c.requests))
	copy(result, c.requests)

	return result
}

func (c *St) GetRequest(uri string, obj any) (*RequestSt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, req := range c.requests {
		if req.Uri != uri {
			continue
		}

		if len(req.Raw) > 0 && obj != nil {
			err := json.Unmarshal(req.Raw, obj)
			if err != nil {
				c.lg.Errorw("Fail to unmarshal json", err)
				return nil, false
			}
		}

		return req, true
	}

	return nil, false
}

func (c *St) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = []*RequestSt{}
	c.responses = map[string]ResponseSt{}
}
