package domain

// Card is a collectible reward. Its rarity names the tier it belongs to.
type Card struct {
	ID        string  `json:"id"`
	SetID     *string `json:"set_id"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Year      *int    `json:"year"`
	Rarity    string  `json:"rarity"`
	ImagePath *string `json:"image_path"`
}
