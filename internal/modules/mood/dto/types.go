package dto

type MoodOutput struct {
	ID          string
	Emoji       string
	Color       string
	Label       string
	Description string
}
