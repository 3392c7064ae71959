// Package errreport forwards unexpected errors to Rollbar and the log.
package errreport

import (
	"log"
	"net/http"
	"os"

	"github.com/rollbar/rollbar-go"
	rollbarerrors "github.com/rollbar/rollbar-go/errors"

	"hostelez/internal/config"
)

// Reporter records errors nobody upstream can handle.
type Reporter struct {
	enabled bool
}

// New configures the rollbar client. Reporting stays off without a token.
func New(cfg config.App) *Reporter {
	host, _ := os.Hostname()
	rollbar.SetToken(cfg.RollbarToken)
	rollbar.SetEnvironment(cfg.Env)
	rollbar.SetCodeVersion(cfg.Build)
	rollbar.SetServerHost(host)
	rollbar.SetStackTracer(rollbarerrors.StackTracer)
	enabled := cfg.RollbarToken != ""
	rollbar.SetEnabled(enabled)
	return &Reporter{enabled: enabled}
}

// Nop returns a reporter that only logs.
func Nop() *Reporter { return &Reporter{} }

// Error logs err and sends it with extras to Rollbar.
func (r *Reporter) Error(err error, extras map[string]interface{}) {
	log.Printf("error: %+v", err)
	if r == nil || !r.enabled {
		return
	}
	rollbar.Error(err, extras)
}

// Request is Error with the HTTP request attached.
func (r *Reporter) Request(req *http.Request, err error, extras map[string]interface{}) {
	log.Printf("error: %s %s: %+v", req.Method, req.URL.Path, err)
	if r == nil || !r.enabled {
		return
	}
	rollbar.RequestErrorWithExtras(rollbar.ERR, req, err, extras)
}

// Wait blocks until queued reports are sent.
func (r *Reporter) Wait() {
	if r != nil && r.enabled {
		rollbar.Wait()
	}
}

// Close flushes queued reports.
func (r *Reporter) Close() {
	if r != nil && r.enabled {
		rollbar.Close()
	}
}
