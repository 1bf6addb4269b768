package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) CreateUser(username string) (*http.Response, error) {
	return d.post("/users", map[string]any{"username": username})
}

func (d *APIDriver) GetUser(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/users/%s", d.baseURL, id))
}

func (d *APIDriver) ListUserAccounts(userID string, page, limit int) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/users/%s/accounts?page=%d&limit=%d", d.baseURL, userID, page, limit))
}

func (d *APIDriver) CreateRiskType(name string) (*http.Response, error) {
	return d.post("/risk-types", map[string]any{"name": name})
}

func (d *APIDriver) GetRiskType(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/risk-types/%s", d.baseURL, id))
}

func (d *APIDriver) ListRiskTypes() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/risk-types", d.baseURL))
}

func (d *APIDriver) DeleteRiskType(id string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/risk-types/%s", id), nil)
}

func (d *APIDriver) AddCustomField(riskTypeID, name, format, rawValues string) (*http.Response, error) {
	return d.post(fmt.Sprintf("/risk-types/%s/custom-fields", riskTypeID), map[string]any{
		"name":       name,
		"format":     format,
		"raw_values": rawValues,
	})
}

func (d *APIDriver) ValidateValue(riskTypeID, fieldID, value string) (*http.Response, error) {
	return d.post(fmt.Sprintf("/risk-types/%s/custom-fields/%s/validate", riskTypeID, fieldID), map[string]any{"value": value})
}

func (d *APIDriver) OpenAccount(userID, riskTypeID string) (*http.Response, error) {
	return d.post("/accounts", map[string]any{
		"user_id":      userID,
		"risk_type_id": riskTypeID,
	})
}

func (d *APIDriver) GetAccount(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/accounts/%s", d.baseURL, id))
}

func (d *APIDriver) CloseAccount(id string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/accounts/%s", id), nil)
}

func (d *APIDriver) SetCustomValue(accountID, fieldID, value string) (*http.Response, error) {
	return d.do(http.MethodPut, fmt.Sprintf("/accounts/%s/custom-values/%s", accountID, fieldID), map[string]any{"value": value})
}

func (d *APIDriver) post(path string, body map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, path, body)
}

func (d *APIDriver) do(method, path string, body map[string]any) (*http.Response, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	req, err := http.NewRequest(method, d.baseURL+path, &payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}
