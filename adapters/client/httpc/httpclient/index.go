package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/rendau/webtools/adapters/client/httpc"
	"github.com/rendau/webtools/adapters/logger"
	"github.com/rendau/webtools/errs"
	"github.com/rendau/webtools/tools"
)

type St struct {
	lg        logger.Lite
	opts      httpc.OptionsSt
	transport *http.Transport
}

var _ httpc.HttpC = (*St)(nil)

func New(lg logger.Lite, opts httpc.OptionsSt) *St {
	if opts.Tls == nil {
		opts.Tls = httpc.InsecureTls()
	}
	if opts.RetryCount == 0 {
		opts.RetryCount = httpc.DefaultRetryCount
	} else if opts.RetryCount < 0 {
		opts.RetryCount = 0
	}
	if opts.RetryInterval < 0 {
		opts.RetryInterval = 0
	}

	return &St{
		lg:        lg,
		opts:      opts,
		transport: newTransport(opts.Tls, nil),
	}
}

func (c *St) GetOptions() httpc.OptionsSt {
	return c.opts
}

// Get fetches uri and returns the body as text.
// Only a 503 whose body does not mention "token", a timeout and an
// undecodable body are retried; RetryInterval is slept between attempts.
func (c *St) Get(ctx context.Context, uri string, opts httpc.OptionsSt) (string, error) {
	opts = c.opts.GetMergedWith(opts)

	if !tools.ValidateUrl(uri) {
		if opts.LogFlags&httpc.NoLogError <= 0 {
			c.lg.Errorw(opts.LogPrefix+"Invalid url", nil, "uri", uri)
		}
		return "", errs.New(errs.InvalidInput, "invalid url: "+uri, nil)
	}

	if len(opts.Headers) == 0 {
		opts.Headers = httpc.DefaultGetHeaders()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = httpc.DefaultGetTimeout
	}

	uri = tools.EncodeUrl(uri)

	if len(opts.Params) > 0 {
		if strings.Contains(uri, "?") {
			uri += "&" + opts.Params.Encode()
		} else {
			uri += "?" + opts.Params.Encode()
		}
	}

	client, release := c.client(opts)
	defer release()

	origLogFlags := opts.LogFlags

	var err error
	var retry bool
	var body string

	for left := opts.RetryCount; left > 0; left-- {
		if left == 1 {
			opts.LogFlags = origLogFlags
		} else {
			opts.LogFlags = origLogFlags | httpc.NoLogError
		}

		body, retry, err = c.get(ctx, client, uri, opts)
		if err == nil {
			return body, nil
		}
		if !retry {
			return "", err
		}

		if left > 1 {
			if sErr := sleep(ctx, opts.RetryInterval); sErr != nil {
				return "", errs.New(errs.Transport, "interrupted", sErr)
			}
		}
	}

	c.lg.Debugw(opts.LogPrefix+"Achieves max retry", "uri", uri)

	return "", errs.New(errs.RetriesExhausted, "uri: "+uri, err)
}

func (c *St) get(ctx context.Context, client *http.Client, uri string, opts httpc.OptionsSt) (string, bool, error) {
	logError := opts.LogFlags&httpc.NoLogError <= 0

	reqCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, uri, nil)
	if err != nil {
		c.lg.Debugw(opts.LogPrefix+"Fail to create http-request", "uri", uri, "error", err)
		return "", false, errs.New(errs.Transport, "fail to create http-request", err)
	}

	for k, v := range opts.Headers {
		req.Header[k] = v
	}

	if opts.LogFlags&httpc.LogRequest > 0 {
		c.lg.Infow(opts.LogPrefix+"request", "method", http.MethodGet, "uri", uri)
	}

	rep, err := client.Do(req)
	if err != nil {
		retry, dErr := c.classifyDoErr(ctx, err, uri, opts)
		return "", retry, dErr
	}
	defer rep.Body.Close()

	repBody, err := io.ReadAll(rep.Body)
	if err != nil {
		c.logUnexpected(logError, opts.LogPrefix+"Fail to read body", err, uri)
		return "", true, errs.New(errs.DecodeFailed, "fail to read body", err)
	}

	if rep.StatusCode >= 400 {
		message, dErr := decodeText(repBody)
		if dErr != nil {
			message = string(repBody)
		}

		c.lg.Debugw(opts.LogPrefix+"Request failed", "uri", uri, "status_code", rep.StatusCode)

		statusErr := errs.StatusErr{Code: rep.StatusCode, Body: message}

		if rep.StatusCode == http.StatusServiceUnavailable && !strings.Contains(message, "token") {
			return "", true, statusErr
		}

		return "", false, errs.New(errs.Rejected, "", statusErr)
	}

	content, err := decodeText(repBody)
	if err != nil {
		c.logUnexpected(logError, opts.LogPrefix+"Fail to decode body", err, uri)
		return "", true, errs.New(errs.DecodeFailed, "", err)
	}

	if rep.StatusCode != http.StatusOK {
		c.lg.Debugw(opts.LogPrefix+"Request failed", "status_code", rep.StatusCode, "message", content)
		return "", false, errs.New(errs.Rejected, "", errs.StatusErr{Code: rep.StatusCode, Body: content})
	}

	if opts.LogFlags&httpc.LogResponse > 0 {
		c.lg.Infow(opts.LogPrefix+"response", "uri", uri, "body", content)
	}

	return content, false, nil
}

// Post sends params as a json object. On success the caller owns the
// response and must close its body. 401 and 404 are never retried, other
// error statuses and timeouts are retried without a pause.
func (c *St) Post(ctx context.Context, uri string, params map[string]any, opts httpc.OptionsSt) (*http.Response, error) {
	opts = c.opts.GetMergedWith(opts)

	if params == nil {
		return nil, errs.New(errs.InvalidInput, "params must be a map", nil)
	}

	if len(opts.Headers) == 0 {
		opts.Headers = httpc.DefaultPostHeaders()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = httpc.DefaultPostTimeout
	}

	reqBody, err := json.Marshal(params)
	if err != nil {
		return nil, errs.New(errs.InvalidInput, "fail to marshal json", err)
	}

	client, release := c.client(opts)
	defer release()

	origLogFlags := opts.LogFlags

	var retry bool
	var rep *http.Response

	for left := opts.RetryCount; left > 0; left-- {
		if left == 1 {
			opts.LogFlags = origLogFlags
		} else {
			opts.LogFlags = origLogFlags | httpc.NoLogError
		}

		rep, retry, err = c.post(ctx, client, uri, reqBody, opts)
		if err == nil {
			return rep, nil
		}
		if !retry {
			return nil, err
		}
	}

	return nil, errs.New(errs.RetriesExhausted, "uri: "+uri, err)
}

func (c *St) post(ctx context.Context, client *http.Client, uri string, reqBody []byte, opts httpc.OptionsSt) (*http.Response, bool, error) {
	reqCtx, cancel := context.WithTimeout(ctx, opts.Timeout)

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, uri, bytes.NewReader(reqBody))
	if err != nil {
		cancel()
		c.lg.Debugw(opts.LogPrefix+"Fail to create http-request", "uri", uri, "error", err)
		return nil, false, errs.New(errs.Transport, "fail to create http-request", err)
	}

	for k, v := range opts.Headers {
		req.Header[k] = v
	}

	if opts.LogFlags&httpc.LogRequest > 0 {
		c.lg.Infow(opts.LogPrefix+"request", "method", http.MethodPost, "uri", uri, "body", string(reqBody))
	}

	rep, err := client.Do(req)
	if err != nil {
		cancel()
		retry, dErr := c.classifyDoErr(ctx, err, uri, opts)
		return nil, retry, dErr
	}

	if rep.StatusCode >= 400 {
		repBody, _ := io.ReadAll(rep.Body)
		_ = rep.Body.Close()
		cancel()

		c.lg.Debugw(opts.LogPrefix+"Request failed", "uri", uri, "status_code", rep.StatusCode)

		statusErr := errs.StatusErr{Code: rep.StatusCode, Body: string(repBody)}

		if rep.StatusCode == http.StatusUnauthorized || rep.StatusCode == http.StatusNotFound {
			return nil, false, errs.New(errs.Rejected, "", statusErr)
		}

		return nil, true, statusErr
	}

	rep.Body = &cancelOnClose{ReadCloser: rep.Body, cancel: cancel}

	return rep, false, nil
}

// PostJson is Post plus reading the reply. The reply is unmarshalled
// into repObj when both are non-empty.
func (c *St) PostJson(ctx context.Context, uri string, params map[string]any, repObj any, opts httpc.OptionsSt) ([]byte, error) {
	rep, err := c.Post(ctx, uri, params, opts)
	if err != nil {
		return nil, err
	}
	defer rep.Body.Close()

	repBody, err := io.ReadAll(rep.Body)
	if err != nil {
		return nil, errs.New(errs.DecodeFailed, "fail to read body", err)
	}

	if len(repBody) > 0 && repObj != nil {
		if err = json.Unmarshal(repBody, repObj); err != nil {
			if opts.LogFlags&httpc.NoLogError <= 0 {
				c.lg.Errorw(
					opts.LogPrefix+"Fail to unmarshal body", err,
					"uri", uri,
					"rep_body", string(repBody),
				)
			}
			return nil, errs.New(errs.DecodeFailed, "fail to unmarshal body", err)
		}
	}

	return repBody, nil
}

// classifyDoErr returns the retry flag and the error for a failed round trip.
func (c *St) classifyDoErr(ctx context.Context, err error, uri string, opts httpc.OptionsSt) (bool, error) {
	if ctx.Err() != nil {
		return false, errs.New(errs.Transport, "interrupted", ctx.Err())
	}

	if isTimeout(err) {
		c.logUnexpected(opts.LogFlags&httpc.NoLogError <= 0, opts.LogPrefix+"Request timed out", err, uri)
		return true, errs.New(errs.Timeout, "", err)
	}

	c.lg.Debugw(opts.LogPrefix+"Request failed", "uri", uri, "message", err.Error())

	return false, errs.New(errs.Transport, "", err)
}

func (c *St) logUnexpected(logError bool, msg string, err error, uri string) {
	if logError {
		c.lg.Errorw(msg, err, "uri", uri)
	} else {
		c.lg.Debugw(msg, "uri", uri, "error", err)
	}
}

// client returns the http client for opts and a func releasing what it
// allocated for this call only.
func (c *St) client(opts httpc.OptionsSt) (*http.Client, func()) {
	if opts.Client != nil {
		return opts.Client, func() {}
	}

	proxy := proxyUrl(opts.Proxy)

	if proxy == nil && opts.Tls.Insecure() == c.opts.Tls.Insecure() {
		return &http.Client{Transport: c.transport}, func() {}
	}

	tr := newTransport(opts.Tls, proxy)

	return &http.Client{Transport: tr}, tr.CloseIdleConnections
}

func newTransport(t *httpc.TlsSt, proxy *url.URL) *http.Transport {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.TLSClientConfig = t.Config()
	if proxy != nil {
		tr.Proxy = http.ProxyURL(proxy)
	}
	return tr
}

// proxyUrl accepts only http:// and https:// proxies, anything else is ignored.
func proxyUrl(v string) *url.URL {
	for _, scheme := range []string{"https", "http"} {
		if host, ok := strings.CutPrefix(v, scheme+"://"); ok {
			host = strings.TrimRight(host, "/")
			if host == "" {
				return nil
			}
			return &url.URL{Scheme: scheme, Host: host}
		}
	}

	return nil
}

// decodeText returns data as utf-8 text, gunzipping it first if it is not.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer zr.Close()

	plain, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(plain) {
		return "", errors.New("body is not utf-8, " + strconv.Itoa(len(plain)) + " bytes")
	}

	return string(plain), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
