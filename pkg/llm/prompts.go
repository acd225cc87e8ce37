package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/model"
)

// Prompt record caps: everything past these indices is collected but never
// shown to the model.
const (
	maxInstagramRecords = 50
	maxYouTubeRecords   = 20
)

const analysisPromptTemplate = `당신은 헤어 트렌드 분석 전문가이자 성공한 뷰티 컨설턴트입니다. 15년간 전 세계 헤어 트렌드를 분석하며 한국 헤어샵들에게 가장 수익성 높은 트렌드를 추천해왔습니다.

수집된 플랫폼 데이터:
인스타그램: %s
유튜브: %s

분석 기준:
1. 상업적 실현 가능성 (실제 헤어샵 적용 가능)
2. 수익화 잠재력 (롱폼 콘텐츠 조회수)
3. 타겟 명확성 (구체적 고객층)
4. 차별화 요소 (경쟁사 대비)
5. 지속성 (일회성 vs 지속 가능)
6. 계절성 고려 (현재 %d년 %d월)

한국 시장 특성:
- K-뷰티, 아이돌 스타일 선호
- 관리 편의성 중시
- 직장인 라이프스타일 고려
- 4계절 변화 반영

다음 JSON 형식으로 분석 결과를 제공하세요:
{
  "analysis_summary": {
    "collection_time": "%s",
    "data_quality": "높음/중간/낮음",
    "trend_velocity": "빠름/보통/느림",
    "market_sentiment": "긍정적/중립/부정적"
  },
  "top_trends": [
    {
      "trend_name": "구체적인 헤어 트렌드명",
      "popularity_score": 95,
      "target_audience": "20-30대 직장 여성",
      "commercial_viability": "매우 높음",
      "monetization_score": 88,
      "difficulty_level": "초급/중급/고급",
      "equipment_needed": ["필요 도구들"],
      "expected_views": "50만-200만",
      "best_upload_time": "요일 + 시간",
      "keywords": ["SEO 키워드들"],
      "why_trending": "트렌드 이유 상세 분석",
      "revenue_potential": "월 예상 수익 범위",
      "competition_level": "낮음/중간/높음",
      "seasonal_factor": "계절성 분석"
    }
  ],
  "emerging_trends": [
    {
      "trend_name": "신흥 트렌드명",
      "growth_rate": "+150%%",
      "potential_score": 75,
      "time_to_peak": "예상 정점 시기"
    }
  ],
  "content_opportunities": [
    {
      "title_suggestion": "바이럴 가능 제목",
      "content_type": "튜토리얼/리뷰/비교/실패예방",
      "estimated_performance": "예상 성과",
      "hook_angle": "관심 끌기 각도",
      "monetization_angle": "수익화 포인트"
    }
  ]
}`

const planPromptTemplate = `선택된 최고 트렌드: %s
트렌드 상세 정보: %s

이 트렌드를 활용하여 헤어디자이너들이 월 1천만원 이상 수익을 올릴 수 있는 구체적인 롱폼 콘텐츠 기획안 5개를 만들어주세요.

각 기획안은:
- 8-12분 롱폼 위주
- 실용적이고 따라하기 쉬운 내용
- 자연스러운 제품 언급 가능
- 브랜드 협찬 연결 포인트
- 높은 시청 완주율 목표

JSON 형식으로 출력하세요.`

const scriptPromptTemplate = `당신은 '김미연' 원장입니다.

【김미연 원장 프로필】
- 나이: 38세
- 경력: 서울 강남에서 15년간 헤어샵 운영
- 전문 분야: 트렌드 헤어, 얼굴형 분석, 헤어 컬러링
- 성격: 전문적이면서도 친근함, 언니 같은 따뜻함

제목: %s
타겟: %s
키워드: %s

10분 분량의 롱폼 대본을 김미연 원장의 톤앤매너로 작성해주세요.

구조:
[0:00-0:30] 강력한 오프닝 훅
[0:30-2:00] 문제 상황 공감 + 해결책 예고
[2:00-7:00] 단계별 실제 시연 과정
[7:00-8:30] 추가 팁 + 제품 추천
[8:30-10:00] 마무리 + 액션 유도

출력 형식:
[타임코드] 대사 내용
`

func buildAnalysisPrompt(input AnalysisInput) string {
	return fmt.Sprintf(analysisPromptTemplate,
		capRecords(input.Instagram, maxInstagramRecords),
		capRecords(input.YouTube, maxYouTubeRecords),
		input.Now.Year(), int(input.Now.Month()),
		input.Now.UTC().Format(time.RFC3339),
	)
}

func buildPlanPrompt(trend model.TopTrend) string {
	detail, err := json.Marshal(trend)
	if err != nil {
		detail = []byte("{}")
	}
	return fmt.Sprintf(planPromptTemplate, trend.TrendName, detail)
}

func buildScriptPrompt(input ScriptInput) string {
	return fmt.Sprintf(scriptPromptTemplate,
		input.Title,
		input.TargetAudience,
		strings.Join(input.Keywords, ", "),
	)
}

// capRecords renders at most max records as one JSON array literal.
func capRecords(records []json.RawMessage, max int) string {
	if len(records) > max {
		records = records[:max]
	}
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = string(r)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
