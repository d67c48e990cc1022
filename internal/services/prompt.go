package services

import (
	"fmt"

	"travelbot/pkg/llm"
)

const (
	systemPrompt = `Bạn là trợ lý AI chuyên về du lịch Việt Nam và quốc tế.

NHIỆM VỤ:
- Cung cấp thông tin du lịch chính xác và hữu ích
- Gợi ý điểm đến, khách sạn, nhà hàng, hoạt động
- Tư vấn lịch trình, phương tiện, chi phí

PHONG CÁCH:
- Thân thiện, nhiệt tình
- Trả lời chi tiết nhưng dễ hiểu
- Đưa ra gợi ý cụ thể, thực tế`

	noContextPlaceholder = "Chưa có dữ liệu cụ thể"

	userPromptFormat = `THÔNG TIN BỔ SUNG: %s

Câu hỏi: %s

Hãy trả lời một cách chi tiết, hữu ích và thân thiện:`
)

// buildPrompt is deterministic in its inputs.
func buildPrompt(travelContext, message string) []llm.Message {
	if travelContext == "" {
		travelContext = noContextPlaceholder
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(userPromptFormat, travelContext, message)},
	}
}
