package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	"myexplorer/domain"
	"myexplorer/helpers"
	"myexplorer/interfaces"
	"myexplorer/service"
)

// InstanceSourceHTTP creates an interfaces.InstanceSource backed by the cloud inventory API of one region:
// GET baseURL/v1/regions/{region}/instances (paginated with next_token) and
// GET baseURL/v1/regions/{region}/instances/{instance_id}/status. Panics on empty baseURL or region and on nil client.
//
// Parameters: baseURL: API base URL without trailing slash; region: region the source lists; pageSize: max
// records per page sent as max_results (0 lets the API choose); client: HTTP client, its Timeout bounds each request.
//
// Called from cmd/main when source.type is http.
func InstanceSourceHTTP(baseURL, region string, pageSize int, client *http.Client) interfaces.InstanceSource {
	return &instanceSourceHTTP{
		baseURL:  helpers.StrPanic(baseURL, "adapters.instance_source.go: baseURL is required"),
		region:   helpers.StrPanic(region, "adapters.instance_source.go: region is required"),
		pageSize: pageSize,
		client:   helpers.NilPanic(client, "adapters.instance_source.go: http client is required"),
	}
}

type instanceSourceHTTP struct {
	baseURL  string
	region   string
	pageSize int
	client   *http.Client
}

// instancesPage is one page of the list response: { "instances": [ instanceRecord ], "next_token": "..." }.
// An empty next_token ends the listing.
type instancesPage struct {
	Instances []instanceRecord `json:"instances"`
	NextToken string           `json:"next_token"`
}

type instanceRecord struct {
	InstanceID string `json:"instance_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}

type instanceStatusResponse struct {
	InstanceID string `json:"instance_id"`
	Status     string `json:"status"`
}

// ListInstances yields one batch per page. Nothing is requested until the sequence is ranged over; stopping the
// range stops paging. A 404 on the first page (unknown or empty region) yields nothing. Any other failure is
// yielded as the final error.
func (s *instanceSourceHTTP) ListInstances(ctx context.Context, filter domain.InstanceFilter) iter.Seq2[[]domain.InstanceSummary, error] {
	return func(yield func([]domain.InstanceSummary, error) bool) {
		token := ""
		for {
			page, found, err := s.fetchPage(ctx, filter, token)
			if err != nil {
				yield(nil, err)
				return
			}
			if !found {
				return
			}
			batch := make([]domain.InstanceSummary, 0, len(page.Instances))
			for _, r := range page.Instances {
				batch = append(batch, domain.InstanceSummary{
					InstanceID: r.InstanceID,
					Name:       r.Name,
					Status:     domain.InstanceStatus(r.Status),
				})
			}
			if !yield(batch, nil) {
				return
			}
			if page.NextToken == "" {
				return
			}
			token = page.NextToken
		}
	}
}

// fetchPage requests one page. found is false on 404.
func (s *instanceSourceHTTP) fetchPage(ctx context.Context, filter domain.InstanceFilter, token string) (page instancesPage, found bool, err error) {
	query := url.Values{}
	for _, state := range filter.States {
		query.Add("state", string(state))
	}
	if token != "" {
		query.Set("next_token", token)
	}
	if s.pageSize > 0 {
		query.Set("max_results", strconv.Itoa(s.pageSize))
	}
	reqURL := s.regionURL() + "/instances"
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	resp, err := s.get(ctx, reqURL)
	if err != nil {
		return page, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound && token == "" {
		return page, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return page, false, fmt.Errorf("instance api returned %d listing %s", resp.StatusCode, s.region)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return page, false, err
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return page, false, fmt.Errorf("decode instances page: %w", err)
	}
	if page.Instances == nil {
		return page, false, fmt.Errorf("instance api response missing instances field")
	}
	return page, true, nil
}

// GetInstanceStatus returns the live status of one instance. A 404 is returned as an entity_not_found error.
func (s *instanceSourceHTTP) GetInstanceStatus(ctx context.Context, instanceID string) (domain.InstanceStatus, error) {
	reqURL := s.regionURL() + "/instances/" + url.PathEscape(instanceID) + "/status"
	resp, err := s.get(ctx, reqURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", service.NewUnknownInstanceError(instanceID, s.region, nil)
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("instance api returned %d for %s", resp.StatusCode, instanceID)
	}
	var raw instanceStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("decode instance status: %w", err)
	}
	if raw.Status == "" {
		return "", fmt.Errorf("instance api response missing status for %s", instanceID)
	}
	return domain.InstanceStatus(raw.Status), nil
}

func (s *instanceSourceHTTP) regionURL() string {
	return s.baseURL + "/v1/regions/" + url.PathEscape(s.region)
}

func (s *instanceSourceHTTP) get(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return s.client.Do(req)
}
