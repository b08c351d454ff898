package testutils

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
)

// Endpoint describes a mocked HTTP endpoint.
type Endpoint struct {
	Method string
	Url    string
	Data   string // Raw response body
	Code   int
}

var jsonHeader = http.Header{"Content-Type": []string{"application/json"}}

// SetupMockResponder registers a JSON responder on the active httpmock transport.
func SetupMockResponder(t *testing.T, method, url, data string, code int) {
	t.Helper()
	httpmock.RegisterResponder(method, url, httpmock.NewStringResponder(code, data).HeaderSet(jsonHeader))
}

// LoginResponder returns a successful login reply carrying the given token.
func LoginResponder(token string) httpmock.Responder {
	responder, err := httpmock.NewJsonResponder(http.StatusOK, map[string]interface{}{
		"token":        token,
		"success":      true,
		"errorCode":    0,
		"errorMessage": nil,
	})
	if err != nil {
		panic(err)
	}
	return responder
}

var EmptyResponder = httpmock.NewStringResponder(http.StatusOK, "")
var GarbageResponder = httpmock.NewStringResponder(http.StatusOK, "{\"foo\": \"bar\"").HeaderSet(jsonHeader)
var UnauthorizedResponder = httpmock.NewStringResponder(http.StatusUnauthorized, "")
