// server/internal/advisory/advisor.go
package advisory

import (
	"agrisense-farm-api-server/internal/models"
)

// Advisor là interface cho engine tư vấn canh tác.
// Hiện tại chỉ có StubAdvisor; sau này có thể thay bằng một client gọi
// model thật (Ollama/OpenAI) mà không đổi contract với API layer.
type Advisor interface {
	Analyze(request models.AIAnalysisRequest) models.AIAnalysisResponse
}
