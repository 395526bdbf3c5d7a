package classify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"wrong-notebook/internal/i18n"
	"wrong-notebook/internal/photo"
)

// Gemini classifies question photos with a Gemini vision model.
type Gemini struct {
	APIKey string
	Model  string
}

func NewGemini(apiKey, model string) *Gemini {
	return &Gemini{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (g *Gemini) Name() string { return "gemini" }

const draftSchema = `{
  "question": "string, the full transcribed question text",
  "answer": "string, the correct answer",
  "explanation": "string, a short step-by-step explanation",
  "subject": "one of: math | english | physics | chemistry | other",
  "gradeSemester": "string, e.g. 七年级上, empty if unsure",
  "chapter": "string, textbook chapter, empty if unsure",
  "knowledgeTags": ["string, 1-3 knowledge point tags"],
  "difficulty": "one of: easy | medium | hard",
  "confidence": "number 0..1"
}`

func systemPrompt(loc i18n.Locale) string {
	if loc == i18n.EN {
		return "You transcribe a photographed exam question and classify it for a student's mistake notebook.\n" +
			"Transcribe verbatim, do not invent content. Answer and explanation in English.\n" +
			"Return ONLY JSON matching this schema:\n" + draftSchema
	}
	return "你是错题本助手。识别照片中的题目，逐字转写，不要编造内容。\n" +
		"给出正确答案和简短解析（中文），并按学科、年级学期、章节和知识点分类。\n" +
		"只输出符合以下结构的 JSON：\n" + draftSchema
}

// Analyze runs one classification round trip. Failures carry a Kind:
// transport problems map to connection, 401/403 to auth, an unusable body to
// invalid-response.
func (g *Gemini) Analyze(ctx context.Context, imagePayload string, loc i18n.Locale) (QuestionDraft, error) {
	if g.APIKey == "" {
		return QuestionDraft{}, failure(KindAuth, errors.New("GEMINI_API_KEY is empty"))
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return QuestionDraft{}, failure(KindConnection, err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt(loc))},
	}

	imgBytes, mime, err := photo.Decode(imagePayload)
	if err != nil {
		return QuestionDraft{}, failure(KindOther, fmt.Errorf("bad image payload: %w", err))
	}

	parts := []genai.Part{
		genai.Text("Return strictly the JSON object. language=" + string(loc)),
		&genai.Blob{MIMEType: mime, Data: imgBytes},
	}

	// retry transient failures; auth errors are final
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			if isAuthErr(err) {
				return QuestionDraft{}, failure(KindAuth, err)
			}
			lastErr = err
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
			continue
		}
		txt := firstText(resp)
		if txt == "" {
			return QuestionDraft{}, failure(KindInvalidResponse, errors.New("empty response"))
		}
		txt = stripCodeFences(txt)

		var draft QuestionDraft
		if err := json.Unmarshal([]byte(txt), &draft); err != nil {
			return QuestionDraft{}, failure(KindInvalidResponse, fmt.Errorf("bad JSON: %w", err))
		}
		if strings.TrimSpace(draft.Question) == "" {
			return QuestionDraft{}, failure(KindInvalidResponse, errors.New("draft has no question text"))
		}
		if draft.Language == "" {
			draft.Language = string(loc)
		}
		return draft, nil
	}
	return QuestionDraft{}, failure(KindConnection, lastErr)
}

func isAuthErr(err error) bool {
	var ge *googleapi.Error
	if errors.As(err, &ge) {
		return ge.Code == 401 || ge.Code == 403
	}
	return false
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func ptrFloat32(v float32) *float32 { return &v }
