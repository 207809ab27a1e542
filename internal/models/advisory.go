// server/internal/models/advisory.go
package models

// AIAnalysisRequest là payload cho endpoint phân tích AI.
type AIAnalysisRequest struct {
	ZoneID  string `json:"zone_id" binding:"required"`
	Context string `json:"context" binding:"required"`
}

// AIAnalysisResponse là kết quả tư vấn trả về cho client.
// ZoneID chỉ được echo lại, không dùng để tra cứu.
type AIAnalysisResponse struct {
	ZoneID         string  `json:"zone_id"`
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
	RiskLevel      string  `json:"risk_level"` // "High", "Moderate"
}
