package classify

import (
	"context"
	stderrors "errors"
	"net"
	"net/url"
	"strconv"
	"syscall"

	"github.com/ephais/go/errors"
)

// Network classifies failures from net and net/url as CategoryNetwork.
//
// Recognized: *url.Error (metadata op, url, timeout), *net.OpError
// (metadata op, addr, timeout), *net.DNSError (metadata host, timeout) and
// any other net.Error except syscall errnos and context deadlines.
func Network() Classifier {
	return ClassifierFunc(classifyNetwork)
}

func classifyNetwork(err error) (errors.Category, map[string]string, bool) {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return errors.CategoryNetwork, map[string]string{
			"op":      urlErr.Op,
			"url":     urlErr.URL,
			"timeout": strconv.FormatBool(urlErr.Timeout()),
		}, true
	}

	var opErr *net.OpError
	if stderrors.As(err, &opErr) {
		md := map[string]string{
			"op":      opErr.Op,
			"timeout": strconv.FormatBool(opErr.Timeout()),
		}
		if opErr.Addr != nil {
			md["addr"] = opErr.Addr.String()
		}
		return errors.CategoryNetwork, md, true
	}

	var dnsErr *net.DNSError
	if stderrors.As(err, &dnsErr) {
		return errors.CategoryNetwork, map[string]string{
			"host":    dnsErr.Name,
			"timeout": strconv.FormatBool(dnsErr.Timeout()),
		}, true
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) && !isLocalTimeoutError(netErr) {
		return errors.CategoryNetwork, map[string]string{
			"timeout": strconv.FormatBool(netErr.Timeout()),
		}, true
	}

	return errors.CategoryNone, nil, false
}

// isLocalTimeoutError reports whether err satisfies net.Error without being
// a network failure: syscall errnos (reached through *fs.PathError) and
// context deadlines.
func isLocalTimeoutError(err net.Error) bool {
	if _, ok := err.(syscall.Errno); ok { //nolint:errorlint // err is already the matched chain element
		return true
	}
	return stderrors.Is(err, context.DeadlineExceeded)
}
