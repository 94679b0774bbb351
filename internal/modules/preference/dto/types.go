package dto

type LanguageOutput struct {
	Code string
	Tag  string
}
