package httpc

import (
	"net/http"
	"net/url"
	"time"
)

type OptionsSt struct {
	Client *http.Client
	Tls    *TlsSt

	Headers   http.Header
	Params    url.Values
	Proxy     string
	Timeout   time.Duration
	LogFlags  int
	LogPrefix string

	// RetryCount is the attempt budget, the first attempt included.
	RetryCount int

	// RetryInterval is slept between GET attempts only.
	RetryInterval time.Duration
}

// GetMergedWith overlays v on o. For strings "-" resets the value,
// for numbers and durations a negative value does.
func (o OptionsSt) GetMergedWith(v OptionsSt) OptionsSt {
	res := o

	if v.Client != nil {
		res.Client = v.Client
	}
	if v.Tls != nil {
		res.Tls = v.Tls
	}
	if v.Headers != nil {
		res.Headers = v.Headers
	}
	if v.Params != nil {
		res.Params = v.Params
	}
	if v.Proxy != "" {
		if v.Proxy == "-" {
			res.Proxy = ""
		} else {
			res.Proxy = v.Proxy
		}
	}
	if v.Timeout != 0 {
		if v.Timeout < 0 {
			res.Timeout = 0
		} else {
			res.Timeout = v.Timeout
		}
	}
	if v.LogFlags != 0 {
		if v.LogFlags < 0 {
			res.LogFlags = 0
		} else {
			res.LogFlags = v.LogFlags
		}
	}
	if v.LogPrefix != "" {
		if v.LogPrefix == "-" {
			res.LogPrefix = ""
		} else {
			res.LogPrefix = v.LogPrefix
		}
	}
	if v.RetryCount != 0 {
		if v.RetryCount < 0 {
			res.RetryCount = 0
		} else {
			res.RetryCount = v.RetryCount
		}
	}
	if v.RetryInterval != 0 {
		if v.RetryInterval < 0 {
			res.RetryInterval = 0
		} else {
			res.RetryInterval = v.RetryInterval
		}
	}

	return res
}
