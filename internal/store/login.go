package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Login exchanges an API key for a session token.
func Login(r *resty.Client, credentials Credentials) (string, error) {
	slog.Debug("logging in", "username", credentials.UserName, "apiKey", "[REDACTED]")

	response, err := r.R().
		SetBody(credentials).
		Post(GetLoginEndpoint())
	if err != nil {
		return "", errors.WithMessage(err, ErrorLoggingIn)
	}

	body, err := responseBody(response)
	if err != nil {
		return "", errors.WithMessage(err, ErrorLoggingIn)
	}

	var res LoginResponse
	if err := json.Unmarshal(body, &res); err != nil {
		slog.Error(ErrorDecodingResponse, "error", err)
		return "", errors.Wrap(ErrNoToken, ErrorDecodingResponse)
	}

	return extractToken(res.Token, res.ErrorCode, res.ErrorMessage)
}

// Validate asks the API to validate the given session token. The API answers
// with a fresh token that replaces the old one.
func Validate(r *resty.Client, token string) (string, error) {
	slog.Debug("validating session")

	response, err := r.R().
		SetAuthToken(token).
		Post(GetValidateEndpoint())
	if err != nil {
		return "", errors.WithMessage(err, ErrorValidatingSession)
	}

	body, err := responseBody(response)
	if err != nil {
		return "", errors.WithMessage(err, ErrorValidatingSession)
	}

	var res ValidateResponse
	if err := json.Unmarshal(body, &res); err != nil {
		slog.Error(ErrorDecodingResponse, "error", err)
		return "", errors.Wrap(ErrNoToken, ErrorDecodingResponse)
	}

	return extractToken(res.NewToken, res.ErrorCode, res.ErrorMessage)
}

// responseBody checks the status code and returns the non-empty response body.
func responseBody(response *resty.Response) ([]byte, error) {
	if response == nil {
		return nil, fmt.Errorf("response is nil")
	}

	if response.IsError() {
		return nil, fmt.Errorf("response status code: %d", response.StatusCode())
	}

	body := bytes.TrimSpace(response.Body())
	if len(body) == 0 {
		slog.Error("empty response", "status", response.StatusCode())
		return nil, ErrEmptyResponse
	}

	return body, nil
}

func extractToken(token *string, errorCode int, errorMessage *string) (string, error) {
	if token != nil && strings.TrimSpace(*token) != "" {
		return *token, nil
	}

	if errorCode != 0 || errorMessage != nil {
		msg := ""
		if errorMessage != nil {
			msg = *errorMessage
		}
		slog.Error("token rejected", "errorCode", errorCode, "errorMessage", msg)
		return "", errors.Wrapf(ErrNoToken, "error code %d: %s", errorCode, msg)
	}

	slog.Error("no token in response")
	return "", ErrNoToken
}
