package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"propal/internal/model"
)

// loadSeedUsers reads a JSON array of users from a local file or an http(s)
// URL. Entries are not checked here; ImportUsers skips the invalid ones.
func loadSeedUsers(ctx context.Context, from string) ([]model.User, error) {
	var (
		body []byte
		err  error
	)
	if strings.HasPrefix(from, "http://") || strings.HasPrefix(from, "https://") {
		body, err = fetch(ctx, from)
	} else {
		body, err = os.ReadFile(from)
	}
	if err != nil {
		return nil, err
	}

	var users []model.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("parse seed users: %w", err)
	}
	return users, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch seed users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}
