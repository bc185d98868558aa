package assistant

import (
	"fmt"
	"time"

	"taskboard/internal/domain"
)

// ChatMessage is a role/content pair as sent to the completion API and as
// accepted in the request's conversation_history field.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MaxHistoryMessages caps how many caller-supplied history entries are
// forwarded to the completion API. A hard count, not a token budget.
const MaxHistoryMessages = 8

const systemPromptTemplate = `You are an AI Task Management Assistant for %s. You have access to comprehensive task data and can provide insights, analysis, and answers about tasks.

IMPORTANT FORMATTING RULES:
- Use PLAIN TEXT only, no markdown formatting
- Do not use asterisks (*), underscores (_), hashtags (#), or backticks (` + "`" + `)
- Use simple dashes (-) for bullet points if needed
- Use line breaks for structure
- Be conversational and friendly
- Keep responses concise but helpful
- Remember previous conversation context and refer to it when relevant

CURRENT TASK STATISTICS:
- Total Tasks: %d
- Completed: %d
- In Progress: %d
- Todo: %d
- Overdue: %d
- Due Today: %d

TASK LIST:
%s

CAPABILITIES:
- Task analysis and statistics
- Finding specific tasks by status, assignee, or deadline
- Identifying overdue or upcoming tasks
- Providing productivity insights
- Task prioritization suggestions
- Team workload analysis
- Remember and reference previous conversation context

CURRENT DATE: %s

CONVERSATION CONTEXT: You can reference previous messages in this conversation. Be helpful and maintain context awareness.

Please provide helpful, accurate, and actionable responses in plain text format. Be supportive and professional.`

// SystemPrompt renders the fixed instruction template with the user's name,
// the task summary, the formatted task listing and the current date.
func SystemPrompt(userName string, sum Summary, listing string, today time.Time) string {
	return fmt.Sprintf(systemPromptTemplate,
		userName,
		sum.TotalTasks, sum.CompletedTasks, sum.InProgressTasks,
		sum.TodoTasks, sum.OverdueTasks, sum.DueToday,
		listing,
		today.Format(domain.DeadlineFormat),
	)
}

// AssembleMessages builds the ordered message sequence for the completion
// API: system prompt, then at most the last MaxHistoryMessages entries of the
// supplied history in original order, then the new user message.
func AssembleMessages(userName string, sum Summary, listing string, today time.Time, history []ChatMessage, userMessage string) []ChatMessage {
	msgs := make([]ChatMessage, 0, len(history)+2)
	msgs = append(msgs, ChatMessage{
		Role:    "system",
		Content: SystemPrompt(userName, sum, listing, today),
	})

	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}
	msgs = append(msgs, history...)

	msgs = append(msgs, ChatMessage{Role: "user", Content: userMessage})
	return msgs
}
