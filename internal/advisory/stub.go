// server/internal/advisory/stub.go
package advisory

import (
	"strings"

	"agrisense-farm-api-server/internal/models"
)

const (
	diseaseRecommendation = "Potential Fungal Infection detected. Isolate affected area and apply Copper Oxychloride fungicide."
	defaultRecommendation = "Nitrogen levels are low based on recent sensor data. Recommend applying generic NPK 10-26-26 fertilizer."

	stubConfidence = 0.88
)

// StubAdvisor trả lời theo từ khóa trong context, không gọi model thật.
// Kết quả chỉ phụ thuộc vào context; zone_id được echo lại nguyên trạng.
type StubAdvisor struct{}

func NewStub() Advisor { return &StubAdvisor{} }

// TODO: Thay bằng client gọi Ollama khi inference service sẵn sàng.
func (a *StubAdvisor) Analyze(request models.AIAnalysisRequest) models.AIAnalysisResponse {
	recommendation := defaultRecommendation
	riskLevel := "Moderate"

	if strings.Contains(strings.ToLower(request.Context), "disease") {
		recommendation = diseaseRecommendation
		riskLevel = "High"
	}

	return models.AIAnalysisResponse{
		ZoneID:         request.ZoneID,
		Recommendation: recommendation,
		Confidence:     stubConfidence,
		RiskLevel:      riskLevel,
	}
}
