package errs

import (
	"errors"
	"strconv"
)

// Err

type Err string

func (e Err) Error() string {
	return string(e)
}

// ErrWithDesc

type ErrWithDesc struct {
	Err   Err
	Desc  string
	Cause error
}

func (e ErrWithDesc) Error() string {
	msg := e.Err.Error()
	if e.Desc != "" {
		msg += ", desc:" + e.Desc
	}
	if e.Cause != nil {
		msg += ", cause:" + e.Cause.Error()
	}
	return msg
}

func (e ErrWithDesc) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func New(kind Err, desc string, cause error) error {
	return ErrWithDesc{Err: kind, Desc: desc, Cause: cause}
}

// StatusErr is a response with an unexpected status code.

type StatusErr struct {
	Code int
	Body string
}

func (e StatusErr) Error() string {
	return BadStatusCode.Error() + ": " + strconv.Itoa(e.Code)
}

func (e StatusErr) Is(target error) bool {
	switch target {
	case BadStatusCode:
		return true
	case ServiceNA:
		return e.Code == 503
	}
	return false
}

// Kind returns the failure kind of the outermost ErrWithDesc (or bare Err) in err.
func Kind(err error) Err {
	var d ErrWithDesc
	if errors.As(err, &d) {
		return d.Err
	}

	var e Err
	if errors.As(err, &e) {
		return e
	}

	return ""
}

// failure kinds

const (
	InvalidInput     = Err("invalid_input")
	RetriesExhausted = Err("retries_exhausted")
	Rejected         = Err("rejected")
	Transport        = Err("transport_error")
)

// causes

const (
	BadStatusCode = Err("bad_status_code")
	ServiceNA     = Err("service_not_available")
	Timeout       = Err("timeout")
	DecodeFailed  = Err("decode_failed")
)
