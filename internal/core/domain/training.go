package domain

// TrainingItem is a single entry of the seeded training catalog.
type TrainingItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"` // "video" or "article"
	Description string `json:"description"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}
