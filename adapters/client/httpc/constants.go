package httpc

import (
	"net/http"
	"time"
)

const (
	LogRequest  = 1
	LogResponse = 2
	NoLogError  = 4
)

const (
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Safari/537.36"

	AcceptHtml = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.9"

	DefaultGetTimeout  = 10 * time.Second
	DefaultPostTimeout = 30 * time.Second
	DefaultRetryCount  = 3
)

func DefaultGetHeaders() http.Header {
	return http.Header{
		"User-Agent": {UserAgent},
		"Accept":     {AcceptHtml},
	}
}

func DefaultPostHeaders() http.Header {
	return http.Header{
		"User-Agent":   {UserAgent},
		"Content-Type": {"application/json"},
	}
}
