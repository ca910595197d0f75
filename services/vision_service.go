package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/SBP359/MyNutriMate/models"
	"github.com/SBP359/MyNutriMate/utils"
)

// AnalysisResult is what the vision collaborator returns for one photo
// or label submission. Its verdict is a best-effort guess only: the
// model cannot see doctor rule lists, so the resolver re-checks it.
type AnalysisResult struct {
	Kind             string                `json:"kind"` // "food" | "label"
	ItemName         string                `json:"item_name"`
	BrandName        string                `json:"brand_name"`
	EstimatedWeightG float64               `json:"estimated_weight_g"`
	Nutrition        models.Nutrition      `json:"nutrition"`
	Micros           models.Micronutrients `json:"micronutrients"`
	ExpiryDate       string                `json:"expiry_date,omitempty"`
	DietaryWarnings  []string              `json:"dietary_warnings"`
	SafetyVerdict    utils.SafetyVerdict   `json:"safety_verdict"`
}

type VisionService struct {
	client *http.Client
	token  string
	model  string
	rek    *RekognitionService
}

func NewVisionService(rek *RekognitionService) *VisionService {
	model := os.Getenv("VISION_MODEL")
	if model == "" {
		model = "google/flan-t5-large"
	}
	return &VisionService{
		client: &http.Client{Timeout: 30 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  model,
		rek:    rek,
	}
}

// AnalyzeFoodImage turns a meal photo into a structured analysis.
// Rekognition supplies label hints, the inference model fills in the
// nutrition estimate, and the authoritative resolver overrides the
// model's safety guess before anything is returned to the client.
func (v *VisionService) AnalyzeFoodImage(user *models.User, imageBase64 string) (*AnalysisResult, error) {
	labels, err := v.rek.RecognizeLabels(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("image recognition failed: %w", err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no food detected in image")
	}

	res, err := v.requestAnalysis(user, models.IntakeFood, strings.Join(labels, ", "))
	if err != nil {
		return nil, err
	}
	v.applyAuthoritativeVerdict(user, res)
	return res, nil
}

// AnalyzeLabelText turns OCR'd or typed label text into a structured
// analysis for a packaged product.
func (v *VisionService) AnalyzeLabelText(user *models.User, labelText string) (*AnalysisResult, error) {
	if strings.TrimSpace(labelText) == "" {
		return nil, fmt.Errorf("label text is required")
	}
	res, err := v.requestAnalysis(user, models.IntakeLabel, labelText)
	if err != nil {
		return nil, err
	}
	v.applyAuthoritativeVerdict(user, res)
	return res, nil
}

func (v *VisionService) applyAuthoritativeVerdict(user *models.User, res *AnalysisResult) {
	verdict, err := CheckFoodForPatient(user, utils.NewFoodIdentity(res.ItemName, res.BrandName), res.Nutrition)
	if err != nil {
		// keep the model's guess if rules are unreachable, but say so
		res.SafetyVerdict.Reason = res.SafetyVerdict.Reason + " (doctor lists unavailable)"
		return
	}
	res.SafetyVerdict = verdict
}

func (v *VisionService) requestAnalysis(user *models.User, kind, subject string) (*AnalysisResult, error) {
	if v.token == "" {
		return nil, fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	history := ""
	if user.MedicalHistory != nil {
		history = *user.MedicalHistory
	}

	var sb bytes.Buffer
	sb.WriteString("You are a nutrition analyst. Analyze the following ")
	if kind == models.IntakeLabel {
		sb.WriteString("product label text")
	} else {
		sb.WriteString("recognized meal")
	}
	fmt.Fprintf(&sb, ": %q.\n", subject)
	fmt.Fprintf(&sb, "User medical history: %q.\n", history)
	sb.WriteString(`Respond with a single JSON object with keys: kind, item_name, brand_name, estimated_weight_g, nutrition {calories, protein_g, fat_g, carbs_g, sugar_g, sodium_mg}, micronutrients {iron_mg, calcium_mg, potassium_mg, vitamin_a_iu, vitamin_c_mg, vitamin_d_iu} (null for anything not determinable), expiry_date, dietary_warnings, safety_verdict {is_safe, reason}.`)

	generated, err := v.callInferenceAPI(sb.String())
	if err != nil {
		return nil, err
	}

	// models wrap JSON in prose now and then; cut to the outermost object
	start := strings.Index(generated, "{")
	end := strings.LastIndex(generated, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("analysis response contained no JSON object")
	}

	var res AnalysisResult
	if err := json.Unmarshal([]byte(generated[start:end+1]), &res); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	res.Kind = kind
	if res.SafetyVerdict.Reason == "" {
		res.SafetyVerdict = utils.SafetyVerdict{IsSafe: true, Reason: "No analysis-time concerns reported."}
	}
	return &res, nil
}

func (v *VisionService) callInferenceAPI(prompt string) (string, error) {
	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens": 512,
			"temperature":    0.2,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", v.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+v.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read inference response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("inference api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("inference api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return "", fmt.Errorf("decode inference response error: %v | body: %s", err, preview)
	}
	if len(out) == 0 || strings.TrimSpace(out[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty response from inference api")
	}
	return out[0].GeneratedText, nil
}

// HistoryChecker adapts the inference model into the resolver's
// medical-history extension point. Any transport or parse failure is a
// "no conflict": the deny list has already been consulted by then, and
// the default for unlisted items is safe.
func (v *VisionService) HistoryChecker() utils.HistoryChecker {
	return func(n models.Nutrition, history string) (bool, string) {
		prompt := fmt.Sprintf(
			"Medical history: %q. Item nutrition: %.0f kcal, %.1fg protein, %.1fg fat, %.1fg carbs, %.1fg sugar, %.0fmg sodium. "+
				`Does this item conflict with the history? Respond with a single JSON object {"conflict": bool, "reason": string}.`,
			history, n.Calories, n.ProteinG, n.FatG, n.CarbsG, n.SugarG, n.SodiumMg,
		)
		generated, err := v.callInferenceAPI(prompt)
		if err != nil {
			return false, ""
		}
		start := strings.Index(generated, "{")
		end := strings.LastIndex(generated, "}")
		if start < 0 || end <= start {
			return false, ""
		}
		var out struct {
			Conflict bool   `json:"conflict"`
			Reason   string `json:"reason"`
		}
		if err := json.Unmarshal([]byte(generated[start:end+1]), &out); err != nil {
			return false, ""
		}
		if out.Conflict && out.Reason == "" {
			out.Reason = "Risky: this item conflicts with your medical history."
		}
		return out.Conflict, out.Reason
	}
}
