package model

// UploadResult is the response body of a successful image upload.
// NutritionSource is Nutrition.Source, or empty when nothing was found.
type UploadResult struct {
	Success         bool             `json:"success"`
	Image           string           `json:"image"`
	ContentType     string           `json:"content_type"`
	Label           string           `json:"label"`
	Nutrition       *NutritionRecord `json:"nutrition"`
	NutritionSource string           `json:"nutrition_source,omitempty"`
}
