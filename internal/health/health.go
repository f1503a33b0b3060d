// Package health verifies the configured provider entries for the doctor
// command.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Status is what doctor reports for one provider entry.
type Status struct {
	Reachable bool
	Models    []string // model ids the endpoint listed, when it lists any
	ModelErr  string   // set when the configured model is missing from Models
	Err       string
	Latency   time.Duration
}

const checkTimeout = 10 * time.Second

// Check examines one provider entry. All three backend types expose a model
// listing, so when a listing comes back the configured model is verified
// against it too; model == "" skips that part.
func Check(ctx context.Context, providerType, baseURL, apiKey, model string) Status {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	var s Status
	switch providerType {
	case "openai":
		s = queryOpenAI(ctx, baseURL, apiKey)
	case "anthropic":
		s = queryAnthropic(ctx, baseURL, apiKey)
	case "google":
		s = queryGoogle(ctx, baseURL, apiKey)
	default:
		s.Err = fmt.Sprintf("unknown provider type %q", providerType)
	}
	s.Latency = time.Since(start)

	if s.Reachable && model != "" && len(s.Models) > 0 && !listed(s.Models, model) {
		s.ModelErr = fmt.Sprintf("model %q is not in the endpoint's listing", model)
	}
	return s
}

func listed(models []string, want string) bool {
	for _, m := range models {
		if m == want {
			return true
		}
	}
	return false
}

func queryOpenAI(ctx context.Context, baseURL, apiKey string) Status {
	var s Status
	hdr := http.Header{}
	if apiKey != "" {
		hdr.Set("Authorization", "Bearer "+apiKey)
	}
	body, err := fetch(ctx, strings.TrimRight(baseURL, "/")+"/models", hdr)
	if err != nil {
		s.Err = err.Error()
		return s
	}
	var listing struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	s.Reachable = true
	// Some local backends answer with non-standard JSON; reachable is
	// still the right verdict, just without a model check.
	if json.Unmarshal(body, &listing) != nil {
		return s
	}
	for _, m := range listing.Data {
		s.Models = append(s.Models, m.ID)
	}
	return s
}

func queryAnthropic(ctx context.Context, baseURL, apiKey string) Status {
	var s Status
	if apiKey == "" {
		s.Err = "no API key configured (set ANTHROPIC_API_KEY)"
		return s
	}
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	hdr := http.Header{}
	hdr.Set("x-api-key", apiKey)
	hdr.Set("anthropic-version", "2023-06-01")
	body, err := fetch(ctx, strings.TrimRight(baseURL, "/")+"/v1/models", hdr)
	if err != nil {
		s.Err = err.Error()
		return s
	}
	var listing struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	s.Reachable = true
	if json.Unmarshal(body, &listing) != nil {
		return s
	}
	for _, m := range listing.Data {
		s.Models = append(s.Models, m.ID)
	}
	return s
}

func queryGoogle(ctx context.Context, baseURL, apiKey string) Status {
	var s Status
	if apiKey == "" {
		s.Err = "no API key configured (set GEMINI_API_KEY)"
		return s
	}
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	url := fmt.Sprintf("%s/v1beta/models?key=%s&pageSize=100", strings.TrimRight(baseURL, "/"), apiKey)
	body, err := fetch(ctx, url, nil)
	if err != nil {
		s.Err = err.Error()
		return s
	}
	var listing struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	s.Reachable = true
	if json.Unmarshal(body, &listing) != nil {
		return s
	}
	for _, m := range listing.Models {
		s.Models = append(s.Models, strings.TrimPrefix(m.Name, "models/"))
	}
	return s
}

// fetch does the GET and folds the failure modes doctor cares about into a
// single message.
func fetch(ctx context.Context, url string, hdr http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range hdr {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach endpoint: %s", netHint(err))
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == 401 || resp.StatusCode == 403:
		return nil, fmt.Errorf("authentication failed (check the API key)")
	case resp.StatusCode != 200:
		return nil, fmt.Errorf("endpoint returned HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func netHint(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "connection refused (backend not running?)"
	case strings.Contains(msg, "no such host"):
		return "unknown host (check base_url)"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "timed out waiting for the endpoint"
	}
	return msg
}
