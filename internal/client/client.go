// Package client talks to the steps HTTP API.
package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/limbo/stepcount/internal/api"
	"github.com/limbo/stepcount/pkg/httputil"
)

const (
	FetchFailedMessage  = "Failed to fetch steps."
	SubmitFailedMessage = "An error occurred while submitting the form."
)

// APIError is a non-2xx answer of the API.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for baseURL. No timeout is applied unless httpClient carries one.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) ListSteps(ctx context.Context) ([]api.StepResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/steps", nil)
	if err != nil {
		return nil, errors.New("building list request error: " + err.Error())
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.New("listing steps error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &APIError{Status: resp.StatusCode, Message: FetchFailedMessage}
	}
	var body struct {
		Data []api.StepResponse `json:"data"`
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.New("decoding steps list error: " + err.Error())
	}
	if body.Data == nil {
		body.Data = []api.StepResponse{}
	}
	return body.Data, nil
}

func (c *Client) LogSteps(ctx context.Context, date string, stepCount int) (*api.StepResponse, error) {
	payload, err := sonic.ConfigDefault.Marshal(map[string]any{
		"date":      date,
		"stepCount": stepCount,
	})
	if err != nil {
		return nil, errors.New("encoding steps error: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/steps", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.New("building log request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.New("logging steps error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}
	var body struct {
		Data api.StepResponse `json:"data"`
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.New("decoding logged steps error: " + err.Error())
	}
	return &body.Data, nil
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Message: SubmitFailedMessage}
	var body httputil.ErrorResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&body); err != nil {
		return apiErr
	}
	if body.Message != "" {
		apiErr.Message = body.Message
	}
	apiErr.Fields = body.Errors
	return apiErr
}
