package logger

type Full interface {
	Lite

	Debug(args ...interface{})
	Debugf(tmpl string, args ...interface{})

	Info(args ...interface{})
	Infof(tmpl string, args ...interface{})

	Warn(args ...interface{})
	Warnf(tmpl string, args ...interface{})

	Error(args ...interface{})
	Errorf(tmpl string, args ...interface{})
}

// Lite is what the http helpers log through.
type Lite interface {
	Debugw(msg string, args ...interface{})
	Infow(msg string, args ...interface{})
	Warnw(msg string, args ...interface{})
	Errorw(msg string, err interface{}, args ...interface{})
}
