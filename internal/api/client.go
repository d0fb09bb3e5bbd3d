package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the movie-guessing collaborator API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a collaborator API client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// TodayGame fetches the current daily game
func (c *Client) TodayGame(ctx context.Context) (*TodayGame, error) {
	url := fmt.Sprintf("%s/today-game", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	var game TodayGame
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		return nil, err
	}

	return &game, nil
}

// SubmitGuess submits a guess for the current clue
func (c *Client) SubmitGuess(ctx context.Context, guess GuessRequest) (*GuessVerdict, error) {
	url := fmt.Sprintf("%s/guess", c.baseURL)

	payload, err := json.Marshal(guess)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	var verdict GuessVerdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, err
	}

	return &verdict, nil
}
