package parser

import "strings"

const promptTemplate = `You are a task extraction assistant. Extract the task title from the user's voice input.

Rules:
1. Extract only the core task action (what needs to be done)
2. Remove filler words like "add", "create", "remind me to", "I need to"
3. Remove list references like "to my list", "to inbox", "to groceries"
4. Keep the task title concise but complete
5. Respond with ONLY a JSON object, no other text

Examples:
Input: "Add buy milk to my grocery list"
Output: {"title": "Buy milk"}

Input: "Remind me to call the dentist tomorrow"
Output: {"title": "Call the dentist"}

Input: "I need to finish the report by Friday"
Output: {"title": "Finish the report"}

Input: "Add task research health insurance options"
Output: {"title": "Research health insurance options"}

Input: "Buy eggs"
Output: {"title": "Buy eggs"}

Now extract the task from this input:
Input: "%INPUT%"
Output:`

// buildPrompt embeds the utterance in the extraction prompt, escaping double quotes.
func buildPrompt(input string) string {
	escaped := strings.ReplaceAll(input, `"`, `\"`)
	return strings.Replace(promptTemplate, "%INPUT%", escaped, 1)
}
