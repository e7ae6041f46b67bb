package classify

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/google/go-github/v67/github"

	"github.com/ephais/go/errors"
)

// GitHub classifies failures returned by the go-github client.
//
// Rate limiting maps to CategoryNetwork. An *github.ErrorResponse is
// classified by status: 401 and 403 map to CategoryAuth, 400 and 422 to
// CategoryDataFormat, 429 and 5xx to CategoryNetwork and everything else
// to CategoryExternal. The status code is recorded as metadata "status".
func GitHub() Classifier {
	return ClassifierFunc(classifyGitHub)
}

func classifyGitHub(err error) (errors.Category, map[string]string, bool) {
	var rateErr *github.RateLimitError
	if stderrors.As(err, &rateErr) {
		return errors.CategoryNetwork, statusMetadata(rateErr.Response), true
	}

	var abuseErr *github.AbuseRateLimitError
	if stderrors.As(err, &abuseErr) {
		return errors.CategoryNetwork, statusMetadata(abuseErr.Response), true
	}

	var respErr *github.ErrorResponse
	if stderrors.As(err, &respErr) {
		return categoryForStatus(statusCode(respErr.Response)), statusMetadata(respErr.Response), true
	}

	return errors.CategoryNone, nil, false
}

func categoryForStatus(status int) errors.Category {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return errors.CategoryAuth
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return errors.CategoryDataFormat
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return errors.CategoryNetwork
	default:
		return errors.CategoryExternal
	}
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func statusMetadata(resp *http.Response) map[string]string {
	if resp == nil {
		return nil
	}
	return map[string]string{"status": strconv.Itoa(resp.StatusCode)}
}
