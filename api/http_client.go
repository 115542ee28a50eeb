// api/http_client.go
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// Session carries the bearer token for authenticated calls. It is attached
// to the client explicitly; there is no ambient/global token state. The
// lifecycle is login -> attach token -> logout -> clear token.
type Session struct {
	token string
}

// Login stores the token obtained from the auth endpoint.
func (s *Session) Login(token string) {
	s.token = token
}

// Logout clears the token.
func (s *Session) Logout() {
	s.token = ""
}

// Authenticated reports whether a token is attached.
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// HTTPClient struct to hold base URL, session and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	Session    *Session
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		Session: &Session{},
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second, // Set a timeout for requests
		},
	}
}

// Request makes an HTTP request to the API and decodes the response
func (c *HTTPClient) Request(method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequest(method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Session != nil && c.Session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.Session.token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.New("unexpected status code: " + res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}

	return nil
}
