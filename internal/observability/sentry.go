package observability

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
)

func InitSentry(dsn, env, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

func CaptureErr(err error) {
	if err != nil {
		sentry.CaptureException(err)
	}
}

// Statuser is implemented by gateway errors that carry an HTTP status.
// Status 0 means the request never got a response.
type Statuser interface {
	HTTPStatus() int
}

// CaptureSystemErr sends only system failures to Sentry: transport errors
// and 5xx. Client-side rejections (4xx, bad credentials) stay out of it.
func CaptureSystemErr(err error) {
	if err == nil {
		return
	}
	var st Statuser
	if errors.As(err, &st) {
		if s := st.HTTPStatus(); s >= 400 && s < 500 {
			return
		}
	}
	sentry.CaptureException(err)
}
