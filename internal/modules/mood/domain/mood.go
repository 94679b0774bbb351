package domain

import (
	"fmt"
	"strings"

	apperrors "gentlemind/internal/platform/errors"
	"gentlemind/internal/platform/i18n"
)

type Mood string

const (
	Amazing   Mood = "Amazing"
	Happy     Mood = "Happy"
	Normal    Mood = "Normal"
	Exhausted Mood = "Exhausted"
	Depressed Mood = "Depressed"
	Angry     Mood = "Angry"
)

// All lists moods in check-in order.
func All() []Mood {
	return []Mood{Amazing, Happy, Normal, Exhausted, Depressed, Angry}
}

func (m Mood) Validate() error {
	for _, known := range All() {
		if m == known {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown mood %q", apperrors.ErrInvalidInput, string(m))
}

// Parse accepts a mood name in any letter case.
func Parse(raw string) (Mood, error) {
	trimmed := strings.TrimSpace(raw)
	for _, known := range All() {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: unknown mood %q", apperrors.ErrInvalidInput, raw)
}

// Config is the presentation data attached to a mood.
type Config struct {
	ID          Mood
	Emoji       string
	Color       string
	label       map[i18n.Language]string
	description map[i18n.Language]string
}

func (c Config) Label(lang i18n.Language) string {
	if v, ok := c.label[lang]; ok {
		return v
	}
	return c.label[i18n.Default]
}

func (c Config) Description(lang i18n.Language) string {
	if v, ok := c.description[lang]; ok {
		return v
	}
	return c.description[i18n.Default]
}

// Lookup returns the presentation config; unknown moods get Normal's.
func Lookup(m Mood) Config {
	if c, ok := configs[m]; ok {
		return c
	}
	return configs[Normal]
}

var configs = map[Mood]Config{
	Amazing: {
		ID: Amazing, Emoji: "🤩", Color: "#f59e0b",
		label:       map[i18n.Language]string{i18n.Thai: "ยอดเยี่ยม", i18n.English: "Amazing"},
		description: map[i18n.Language]string{i18n.Thai: "วันนี้เป็นวันที่ดีที่สุด", i18n.English: "Feeling on top of the world"},
	},
	Happy: {
		ID: Happy, Emoji: "😊", Color: "#10b981",
		label:       map[i18n.Language]string{i18n.Thai: "มีความสุข", i18n.English: "Happy"},
		description: map[i18n.Language]string{i18n.Thai: "ยิ้มแย้มแจ่มใส", i18n.English: "Smiling and joyful"},
	},
	Normal: {
		ID: Normal, Emoji: "😐", Color: "#a8a29e",
		label:       map[i18n.Language]string{i18n.Thai: "เฉยๆ", i18n.English: "Normal"},
		description: map[i18n.Language]string{i18n.Thai: "เรียบง่าย สบายๆ", i18n.English: "Just a regular day"},
	},
	Exhausted: {
		ID: Exhausted, Emoji: "😮‍💨", Color: "#f97316",
		label:       map[i18n.Language]string{i18n.Thai: "เหนื่อยล้า", i18n.English: "Exhausted"},
		description: map[i18n.Language]string{i18n.Thai: "หมดแรง ต้องการพักผ่อน", i18n.English: "Drained and need rest"},
	},
	Depressed: {
		ID: Depressed, Emoji: "😢", Color: "#8b5cf6",
		label:       map[i18n.Language]string{i18n.Thai: "เศร้า/หดหู่", i18n.English: "Sad"},
		description: map[i18n.Language]string{i18n.Thai: "รู้สึกดาวน์ ไม่สดใส", i18n.English: "Feeling down or blue"},
	},
	Angry: {
		ID: Angry, Emoji: "😠", Color: "#f43f5e",
		label:       map[i18n.Language]string{i18n.Thai: "หงุดหงิด/โกรธ", i18n.English: "Angry"},
		description: map[i18n.Language]string{i18n.Thai: "อารมณ์ร้อน ขุ่นมัว", i18n.English: "Frustrated or heated"},
	},
}
