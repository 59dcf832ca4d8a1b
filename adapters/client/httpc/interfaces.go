package httpc

import (
	"context"
	"net/http"
)

type HttpC interface {
	GetOptions() OptionsSt
	Get(ctx context.Context, uri string, opts OptionsSt) (string, error)
	Post(ctx context.Context, uri string, params map[string]any, opts OptionsSt) (*http.Response, error)
	PostJson(ctx context.Context, uri string, params map[string]any, repObj any, opts OptionsSt) ([]byte, error)
}
