package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// APIClient handles HTTP communication with the backend. It keeps the
// session cookie from login in its jar, so every later call is
// authenticated the same way a browser would be.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) (*APIClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// Response types matching backend

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

type Application struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	JobTitle    string `json:"jobTitle"`
	Status      string `json:"status"`
	DateApplied string `json:"dateApplied"`
	Notes       string `json:"notes"`
}

// RegisterUser creates a new user account
func (c *APIClient) RegisterUser(email, password, userName string) (*User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"userName": userName,
	}

	resp, err := c.post("/auth/register", body)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("register failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &user, nil
}

// Login authenticates and stores the session cookie in the client jar
func (c *APIClient) Login(email, password string) (*User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	resp, err := c.post("/auth/login", body)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("login failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &user, nil
}

// CreateApplication creates a job application for the logged-in user
func (c *APIClient) CreateApplication(app map[string]string) (*Application, error) {
	resp, err := c.post("/applications", app)
	if err != nil {
		return nil, fmt.Errorf("create application request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create application failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var created Application
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &created, nil
}

// ListApplications fetches all applications owned by the logged-in user
func (c *APIClient) ListApplications() ([]Application, error) {
	resp, err := c.get("/applications")
	if err != nil {
		return nil, fmt.Errorf("list applications request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list applications failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var apps []Application
	if err := json.NewDecoder(resp.Body).Decode(&apps); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return apps, nil
}

func (c *APIClient) post(path string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func (c *APIClient) get(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	return c.httpClient.Do(req)
}
