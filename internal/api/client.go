// Package api is the HTTP client for the Zenith clients backend. It issues
// single best-effort JSON calls: no retry, no timeout override, no auth.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/zenith-academy/intake/internal/form"
	"github.com/zenith-academy/intake/internal/models"
)

// TransportError is any failure to complete a call: non-2xx status, network
// failure, or an unparseable response body. Status is 0 when the HTTP
// exchange itself never completed.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string { return e.Message }

// Client talks to one backend instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

// envelope is the request body shape shared by create and update.
type envelope struct {
	ClientsData *form.Draft `json:"clientsData"`
}

// Pagination selects a page of the client list.
type Pagination struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder string
}

// Filters narrows the client list.
type Filters struct {
	Search     string
	ClassLevel string
	State      string
	Active     bool
}

// Page is one page of results plus the unfiltered-by-paging total.
type Page struct {
	Data  []models.Client `json:"data"`
	Total int64           `json:"total"`
}

// CreateClient POSTs a validated draft to /CreateClients and returns the
// server-echoed created record.
func (c *Client) CreateClient(d *form.Draft) (*models.Client, error) {
	var record models.Client
	if err := c.send(http.MethodPost, "/CreateClients", &envelope{ClientsData: d}, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// FetchPage GETs /GetClients with pagination and filter query parameters.
func (c *Client) FetchPage(p Pagination, f Filters) (*Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("size", strconv.Itoa(p.Size))
	q.Set("sortBy", p.SortBy)
	q.Set("sortOrder", p.SortOrder)
	q.Set("search", f.Search)
	q.Set("classLevel", f.ClassLevel)
	q.Set("state", f.State)
	q.Set("active", strconv.FormatBool(f.Active))

	var page Page
	if err := c.send(http.MethodGet, "/GetClients?"+q.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) UpdateClient(id uint, d *form.Draft) (*models.Client, error) {
	var record models.Client
	path := fmt.Sprintf("/UpdateClients/%d", id)
	if err := c.send(http.MethodPut, path, &envelope{ClientsData: d}, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) DeleteClient(id uint) error {
	return c.send(http.MethodDelete, fmt.Sprintf("/DeleteClients/%d", id), nil, nil)
}

func (c *Client) GetClientByID(id uint) (*models.Client, error) {
	var record models.Client
	if err := c.send(http.MethodGet, fmt.Sprintf("/GetClientsById/%d", id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// send performs one request/response exchange. Non-2xx responses use the
// body's message field when parseable, else "Error {status}: {statusText}".
func (c *Client) send(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return &TransportError{Message: err.Error()}
		}
	}

	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return &TransportError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	httpc := c.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return &TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Message string `json:"message"`
		}
		msg := ""
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			msg = errBody.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return &TransportError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Status: resp.StatusCode, Message: err.Error()}
	}
	return nil
}
