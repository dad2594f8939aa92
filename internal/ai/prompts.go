package ai

import (
	"fmt"
	"strings"

	"langy/internal/model"
)

func quizPrompt(words []PracticeWord, count int, nativeLanguage, targetLanguage string) string {
	pairs := make([]string, 0, len(words))
	for _, w := range words {
		pairs = append(pairs, fmt.Sprintf("%s (%s)", w.Original, w.Translation))
	}
	native := model.LanguageName(nativeLanguage)
	target := model.LanguageName(targetLanguage)

	return fmt.Sprintf(`Generate %[1]d diverse quiz questions for language learning with different question types.
Words to practice: %[2]s
Native language: %[3]s
Target language: %[4]s

Create a mix of these question types:
1. MULTIPLE_CHOICE: "What does '[word]' mean?" with 4 options in %[3]s
2. DEFINITION: "Which word means '[definition in %[3]s]'?" with 4 word options in %[4]s
3. FILL_BLANK: "Complete the sentence in %[4]s: '[sentence with blank]'" with 4 word options in %[4]s

IMPORTANT RULES:
- For DEFINITION questions: Provide the definition/meaning in %[3]s, ask for the word in %[4]s
- For FILL_BLANK questions: The sentence must be entirely in %[4]s, only the blank should be filled
- For MULTIPLE_CHOICE: All options should be in %[3]s
- Do NOT show the word being tested in the question display
- Make incorrect options realistic but clearly wrong
- Include context when helpful

Return ONLY a valid JSON array with format:
[{
  "type": "multiple_choice|definition|fill_blank",
  "question": "question text",
  "correctAnswer": "correct answer",
  "options": ["option1", "option2", "option3", "option4"],
  "word": "word being tested",
  "context": "additional context if needed"
}]`, count, strings.Join(pairs, ", "), native, target)
}

func sentencePrompt(word, translation, targetLanguage string) string {
	return fmt.Sprintf(`Generate a contextual sentence using the word "%s" in %s.
The word means "%s" in English.

Return ONLY a valid JSON object:
{
  "sentence": "sentence in target language",
  "translation": "sentence translation in English",
  "explanation": "brief explanation of usage"
}`, word, model.LanguageName(targetLanguage), translation)
}

func feedbackPrompt(sentence, targetLanguage string) string {
	return fmt.Sprintf(`As a language teacher, provide constructive feedback on this %s sentence:
"%s"

Analyze:
1. Grammar correctness
2. Natural phrasing
3. Vocabulary usage
4. Suggestions for improvement

Return ONLY a valid JSON object:
{
  "isCorrect": true or false,
  "score": number from 0 to 100,
  "feedback": "detailed feedback",
  "corrections": ["correction1", "correction2"],
  "suggestions": ["suggestion1", "suggestion2"]
}`, model.LanguageName(targetLanguage), sentence)
}
