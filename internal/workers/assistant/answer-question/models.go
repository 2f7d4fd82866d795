// internal/workers/assistant/answer-question/models.go
package answerquestion

type Input struct {
	Message  string `json:"message"`
	Language string `json:"language"`
	TenantID string `json:"tenantId"`
}

type Output struct {
	Reply string `json:"reply"`
}
