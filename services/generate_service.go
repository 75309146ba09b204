package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fitcal-backend/models"
	"fitcal-backend/store"
	"fitcal-backend/utils"
)

// TextGenerator produces freeform text for a prompt. The real implementation
// is GeminiClient; tests substitute a canned one.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Gemini REST API.
type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", g.baseURL, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation request failed with status %d: %s", resp.StatusCode, respBytes)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in generation response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateService turns model text into persisted entities.
type GenerateService struct {
	gen   TextGenerator
	store *store.Entities
}

func NewGenerateService(gen TextGenerator, e *store.Entities) *GenerateService {
	return &GenerateService{gen: gen, store: e}
}

// MealCriteria is the user's meal-generation request.
type MealCriteria struct {
	Type        string   `json:"type"`
	Diet        string   `json:"diet"`
	Calories    string   `json:"calories"`
	Ingredients []string `json:"ingredients"`
	Time        string   `json:"time"`
}

// WorkoutCriteria is the user's workout-generation request.
type WorkoutCriteria struct {
	BodyPartFocus string `json:"body_part_focus"`
	Minutes       string `json:"minutes"`
	Goal          string `json:"goal"`
	Equipment     string `json:"equipment"`
}

// GenerateMeal prompts the model, normalizes its output and persists the
// meal. A response that doesn't contain valid JSON fails with
// ErrGenerationParse; the caller is expected to retry with a fresh request.
func (s *GenerateService) GenerateMeal(ctx context.Context, criteria MealCriteria) (*models.Meal, string, error) {
	text, err := s.gen.Generate(ctx, mealPrompt(criteria))
	if err != nil {
		return nil, "", err
	}

	var meal models.Meal
	if err := json.Unmarshal([]byte(cleanGeneratedJSON(text)), &meal); err != nil {
		return nil, "", ErrGenerationParse
	}

	id, err := s.store.InsertMeal(ctx, &meal)
	if err != nil {
		return nil, "", err
	}
	return &meal, id, nil
}

// generatedWorkout is the shape the workout prompt asks the model for, with
// exercises inline.
type generatedWorkout struct {
	Name         string            `json:"name"`
	TotalMinutes int               `json:"total_minutes"`
	Exercises    []models.Exercise `json:"exercises"`
}

// GenerateWorkout prompts the model and materializes the nested result:
// exercises are inserted first, then the workout referencing their generated
// IDs, with body_part_focus derived from the exercises.
func (s *GenerateService) GenerateWorkout(ctx context.Context, criteria WorkoutCriteria) (*models.WorkoutDetails, string, error) {
	text, err := s.gen.Generate(ctx, workoutPrompt(criteria))
	if err != nil {
		return nil, "", err
	}

	var gw generatedWorkout
	if err := json.Unmarshal([]byte(cleanGeneratedJSON(text)), &gw); err != nil {
		return nil, "", ErrGenerationParse
	}

	exerciseIDs := make([]string, 0, len(gw.Exercises))
	parts := make([]string, 0, len(gw.Exercises))
	for i := range gw.Exercises {
		exID, err := s.store.InsertExercise(ctx, &gw.Exercises[i])
		if err != nil {
			return nil, "", err
		}
		exerciseIDs = append(exerciseIDs, exID)
		parts = append(parts, gw.Exercises[i].BodyParts)
	}

	workout := &models.Workout{
		Name:          gw.Name,
		TotalMinutes:  gw.TotalMinutes,
		BodyPartFocus: utils.UnionBodyParts(parts),
		Exercises:     exerciseIDs,
	}
	id, err := s.store.InsertWorkout(ctx, workout)
	if err != nil {
		return nil, "", err
	}

	details := &models.WorkoutDetails{
		ID:            id,
		Name:          workout.Name,
		TotalMinutes:  workout.TotalMinutes,
		BodyPartFocus: workout.BodyPartFocus,
		Exercises:     gw.Exercises,
	}
	return details, id, nil
}

// cleanGeneratedJSON strips markdown code fences from model output and
// brackets the outermost JSON object, leaving something json.Unmarshal can
// take a fair shot at.
func cleanGeneratedJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		text = text[start : end+1]
	}
	return text
}

func mealPrompt(c MealCriteria) string {
	orAny := func(v string) string {
		if v == "" {
			return "any"
		}
		return v
	}
	mealType := c.Type
	if mealType == "" {
		mealType = "meal"
	}
	return fmt.Sprintf(`Create a meal recommendation based on the following criteria:
- Type of meal: %s
- Dietary preference: %s
- Calorie range: %s calories
- Ingredients to include: %s
- Time available: %s minutes

Respond with ONLY a JSON object that fits this schema, with no additional text:
{
    "name": str,
    "calories": int,
    "carbs": int,
    "fats": int,
    "proteins": int,
    "ingredients": [str],
    "type": "%s"
}`,
		orAny(c.Type), orAny(c.Diet), orAny(c.Calories),
		strings.Join(c.Ingredients, ", "), orAny(c.Time), mealType)
}

func workoutPrompt(c WorkoutCriteria) string {
	orAny := func(v string) string {
		if v == "" {
			return "any"
		}
		return v
	}
	return fmt.Sprintf(`Create a workout recommendation based on the following criteria:
- Body parts to focus on: %s
- Time available: %s minutes
- Goal: %s
- Available equipment: %s

Respond with ONLY a JSON object that fits this schema, with no additional text:
{
    "name": str,
    "total_minutes": int,
    "exercises": [
        {
            "name": str,
            "description": str,
            "reps": int,
            "sets": int,
            "weight": int,
            "avg_calories_burned": int,
            "body_parts": str
        }
    ]
}
body_parts is a comma-separated list of the body parts the exercise works.`,
		orAny(c.BodyPartFocus), orAny(c.Minutes), orAny(c.Goal), orAny(c.Equipment))
}
