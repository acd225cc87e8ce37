package social

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeKeywords is the fixed search query set, OR-joined into one search.
var YouTubeKeywords = []string{
	"헤어 튜토리얼", "헤어 자르기", "염색 방법", "헤어 스타일링",
	"살롱 브이로그", "헤어 변신", "셀프 헤어컷", "홈 염색",
	"헤어 망가졌을때", "헤어 복구", "모발 손상", "헤어 케어",
	"앞머리 자르기", "레이어 컷", "보브 컷팅", "펌 과정",
	"헤어 컬러링", "브리치", "탈색", "헤어 드라이",
}

// YouTubeClient searches recent Korean hair-related videos through the
// YouTube Data API.
type YouTubeClient struct {
	apiKey string
	window time.Duration
}

func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		apiKey: apiKey,
		window: 7 * 24 * time.Hour,
	}
}

func (c *YouTubeClient) Name() string {
	return "YouTube"
}

func (c *YouTubeClient) Collect(ctx context.Context) ([]Record, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}

	publishedAfter := time.Now().Add(-c.window).UTC().Format(time.RFC3339)

	res, err := svc.Search.List([]string{"snippet"}).
		Q(strings.Join(YouTubeKeywords, " OR ")).
		Type("video").
		Order("relevance").
		PublishedAfter(publishedAfter).
		MaxResults(100).
		RegionCode("KR").
		RelevanceLanguage("ko").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search: %w", err)
	}

	records := make([]Record, 0, len(res.Items))
	for _, item := range res.Items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("youtube item encode: %w", err)
		}
		records = append(records, raw)
	}

	return records, nil
}
