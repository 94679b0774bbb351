package domain

import (
	"fmt"
	"strings"

	mooddomain "gentlemind/internal/modules/mood/domain"
	"gentlemind/internal/platform/i18n"
)

type Kind string

const (
	KindAffirmation Kind = "affirmation"
	KindScript      Kind = "script"
	KindClosing     Kind = "closing"
)

// Request describes one piece of text to produce. Minutes only matters for
// guided scripts.
type Request struct {
	Kind    Kind
	Mood    mooddomain.Mood
	Minutes int
	Lang    i18n.Language
}

// CacheKey identifies requests that may share an answer.
func (r Request) CacheKey() string {
	if r.Kind == KindScript {
		return fmt.Sprintf("%s/%s/%s/%d", r.Kind, r.Mood, r.Lang, r.Minutes)
	}
	return fmt.Sprintf("%s/%s/%s", r.Kind, r.Mood, r.Lang)
}

func (r Request) Prompt() string {
	lang := r.Lang.PromptName()
	switch r.Kind {
	case KindScript:
		return strings.Join([]string{
			fmt.Sprintf("Write a short Guided Meditation Script in %s.", lang),
			fmt.Sprintf("For a user feeling: %q", string(r.Mood)),
			fmt.Sprintf("Duration: %d minutes.", r.Minutes),
			"",
			"Structure:",
			"1. Start with relaxation and posture.",
			fmt.Sprintf("2. Breathing technique or visualization suitable for the emotion %q.", string(r.Mood)),
			"3. Closing affirmation.",
			"",
			"Tone: Gentle, soothing, like a kind friend or teacher.",
			"Length: 3-4 short paragraphs.",
		}, "\n")
	case KindClosing:
		return strings.Join([]string{
			fmt.Sprintf("The user has just finished a meditation session. They were feeling %q before starting.", string(r.Mood)),
			fmt.Sprintf("Write a warm, healing, and encouraging message (max 2-3 sentences) in %s to congratulate them and give them a final positive thought to carry on with their day.", lang),
			"Tone: Very kind, soft, healing, like a supportive hug.",
			"Do not use quotation marks.",
		}, "\n")
	default:
		return strings.Join([]string{
			"You are a psychology and mindfulness expert.",
			fmt.Sprintf("The user is feeling: %q.", string(r.Mood)),
			fmt.Sprintf("Please create a short \"Wisdom Card\" or mindfulness quote (max 2 sentences) in %s.", lang),
			"It should provide encouragement, perspective, or a grounding thought suitable for this emotion.",
			"Do not include quotation marks. Just the text.",
		}, "\n")
	}
}

// Fallback is the deterministic text used whenever generation is
// unavailable. It is never empty.
func (r Request) Fallback() string {
	lang := r.Lang
	if _, ok := scripts[lang]; !ok {
		lang = i18n.Default
	}
	switch r.Kind {
	case KindScript:
		return scripts[lang]
	case KindClosing:
		return closings[lang]
	default:
		if v, ok := affirmations[lang][r.Mood]; ok {
			return v
		}
		return affirmationDefaults[lang]
	}
}

var affirmations = map[i18n.Language]map[mooddomain.Mood]string{
	i18n.Thai: {
		mooddomain.Exhausted: "การพักผ่อนไม่ใช่ความเกียจคร้าน แต่เป็นการชาร์จพลังให้จิตวิญญาณ",
		mooddomain.Angry:     "ความโกรธก็เหมือนพายุที่พัดผ่าน เดี๋ยวท้องฟ้าก็จะกลับมาสดใส",
		mooddomain.Depressed: "วันแย่ๆ ไม่ได้แปลว่าชีวิตแย่ พรุ่งนี้ยังมีดวงอาทิตย์ขึ้นเสมอ",
	},
	i18n.English: {
		mooddomain.Exhausted: "Rest is not idleness, it's recharging your soul.",
		mooddomain.Angry:     "Anger is like a storm; it passes, and the sky becomes clear again.",
		mooddomain.Depressed: "A bad day doesn't mean a bad life. The sun always rises tomorrow.",
	},
}

var affirmationDefaults = map[i18n.Language]string{
	i18n.Thai:    "จงหายใจเข้าลึกๆ และรู้ว่าช่วงเวลานี้คือชีวิตของคุณ",
	i18n.English: "Breathe deeply, and know that this moment is your life.",
}

var scripts = map[i18n.Language]string{
	i18n.Thai:    "หายใจเข้า... รู้สึกผ่อนคลาย หายใจออก... ปล่อยวางความกังวล",
	i18n.English: "Breathe in... feel relaxed. Breathe out... let go of worries.",
}

var closings = map[i18n.Language]string{
	i18n.Thai:    "ขอบคุณที่คุณมอบความรักให้แก่ใจของตัวเองในวันนี้ ขอให้ความสงบอยู่กับคุณตลอดทั้งวัน",
	i18n.English: "Thank you for showing love to your mind today. May peace be with you throughout the day.",
}
