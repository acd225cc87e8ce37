package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const apifyRunSyncURL = "https://api.apify.com/v2/acts/apify~instagram-hashtag-scraper/run-sync-get-dataset-items"

// InstagramHashtags is the fixed topic list scraped on every run.
var InstagramHashtags = []string{
	"헤어스타일", "헤어트렌드", "머리스타일", "헤어컬러",
	"단발머리", "긴머리", "펌스타일", "염색", "하이라이트",
	"뱅스타일", "레이어드컷", "보브컷", "시스루뱅", "허쉬컷",
	"울프컷", "투블럭", "다운펌", "디지털펌", "매직스트레이트",
	"볼륨펌", "옴브레", "발레아쥬", "그라데이션", "애쉬컬러",
	"핑크컬러", "헤어케어", "탈모", "모발관리", "헤어오일", "트리트먼트",
}

// ApifyClient runs the Instagram hashtag scraper actor synchronously and
// returns its dataset items.
type ApifyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewApifyClient(apiKey string) *ApifyClient {
	return &ApifyClient{
		apiKey:     apiKey,
		baseURL:    apifyRunSyncURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ApifyClient) Name() string {
	return "Instagram"
}

func (c *ApifyClient) Collect(ctx context.Context) ([]Record, error) {
	payload := map[string]interface{}{
		"hashtags":                          InstagramHashtags,
		"resultsLimit":                      1000,
		"addParentData":                     false,
		"enhanceUserSearchWithFacebookPage": false,
		"isUserReelFeedURL":                 false,
		"isUserTaggedFeedURL":               false,
		"searchType":                        "hashtag",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("apify request encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("apify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apify fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("apify fetch: unexpected status %d", resp.StatusCode)
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("apify decode: %w", err)
	}

	return records, nil
}
