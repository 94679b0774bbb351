package i18n

import (
	"fmt"
	"strings"

	apperrors "gentlemind/internal/platform/errors"
)

type Language string

const (
	Thai    Language = "th"
	English Language = "en"

	Default = English
)

func ParseLanguage(raw string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case Thai:
		return Thai, nil
	case English:
		return English, nil
	}
	return "", fmt.Errorf("%w: unsupported language %q", apperrors.ErrInvalidInput, raw)
}

// Other returns the language a toggle switches to.
func (l Language) Other() Language {
	if l == Thai {
		return English
	}
	return Thai
}

// Tag is the BCP 47 tag handed to speech synthesis.
func (l Language) Tag() string {
	if l == Thai {
		return "th-TH"
	}
	return "en-US"
}

// PromptName is how the language is named inside generation prompts.
func (l Language) PromptName() string {
	if l == Thai {
		return "Thai (ภาษาไทย)"
	}
	return "English"
}

// T looks up a UI string. Unknown languages fall back to English and unknown
// keys return the key itself so a missing entry is visible but harmless.
func T(lang Language, key string) string {
	table, ok := catalog[lang]
	if !ok {
		table = catalog[Default]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// TimeSpent renders the summary line for a completed session.
func TimeSpent(lang Language, minutes float64) string {
	if lang == Thai {
		return fmt.Sprintf("คุณได้ใช้เวลา %.1f นาที อยู่กับตัวเอง", minutes)
	}
	return fmt.Sprintf("You spent %.1f minutes with yourself.", minutes)
}

// Weekdays returns short weekday names starting from Sunday.
func Weekdays(lang Language) [7]string {
	if lang == Thai {
		return [7]string{"อา", "จ", "อ", "พ", "พฤ", "ศ", "ส"}
	}
	return [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}

// MonthName returns the localized name for month 1..12.
func MonthName(lang Language, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	if lang == Thai {
		return thaiMonths[month-1]
	}
	return englishMonths[month-1]
}

var thaiMonths = [12]string{"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม"}

var englishMonths = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}

var catalog = map[Language]map[string]string{
	Thai: {
		"welcome":         "วันนี้คุณเป็นอย่างไรบ้าง?",
		"selectMood":      "เลือกสีที่ตรงกับความรู้สึกของคุณที่สุด",
		"statsBtn":        "ดูบันทึกอารมณ์ & สถิติ",
		"startMeditation": "มาผ่อนคลายจิตใจกันเถอะ",
		"backHome":        "กลับหน้าหลัก",
		"back":            "ย้อนกลับ",
		"setupTitle":      "มาเริ่มฝึกจิต นั่งสมาธิกัน",
		"durationLabel":   "กำหนดเวลา (นาที : วินาที)",
		"startBtn":        "มาเริ่มพักใจกัน",
		"exit":            "ออก",
		"prepare":         "เตรียมพร้อม...",
		"greatJob":        "ยอดเยี่ยมมาก!",
		"compliment":      "เก่งมากที่คุณสละเวลาเพื่อตัวเอง",
		"healingMsgTitle": "ข้อความถึงคุณ",
		"healingDefault":  "ขอให้ใจของคุณเบาสบายและเต็มไปด้วยความสุขในวันนี้",
		"moodBefore":      "ความรู้สึกก่อนเริ่ม",
		"viewProgress":    "ดูบันทึกเวลาสมาธิ",
		"statsTitle":      "บันทึกอารมณ์ & ช่วงสมาธิ",
		"totalTime":       "เวลารวม",
		"totalSessions":   "จำนวนครั้ง",
		"mins":            "นาที",
		"secs":            "วินาที",
		"times":           "ครั้ง",
		"last7Days":       "สถิติ 7 วันย้อนหลัง",
		"loading":         "กำลังประมวลผล...",
		"paused":          "หยุดชั่วคราว",
		"inhale":          "หายใจเข้า...",
		"exhale":          "หายใจออก...",
		"ready":           "เตรียมพร้อม...",
	},
	English: {
		"welcome":         "How are you today?",
		"selectMood":      "Select the color that best matches your mood.",
		"statsBtn":        "View Mood Tracker & Stats",
		"startMeditation": "Let's relax your mind",
		"backHome":        "Back to Home",
		"back":            "Back",
		"setupTitle":      "Let's start practicing mindfulness",
		"durationLabel":   "Set Duration (Min : Sec)",
		"startBtn":        "Start Session",
		"exit":            "Exit",
		"prepare":         "Get Ready...",
		"greatJob":        "Great Job!",
		"compliment":      "Well done taking time for yourself.",
		"healingMsgTitle": "A Message for You",
		"healingDefault":  "May your heart be light and filled with joy today.",
		"moodBefore":      "Mood Before",
		"viewProgress":    "View Meditation Log",
		"statsTitle":      "Mood Tracker & Log",
		"totalTime":       "Total Time",
		"totalSessions":   "Total Sessions",
		"mins":            "mins",
		"secs":            "sec",
		"times":           "times",
		"last7Days":       "Last 7 Days",
		"loading":         "Processing...",
		"paused":          "Paused",
		"inhale":          "Inhale...",
		"exhale":          "Exhale...",
		"ready":           "Get Ready...",
	},
}
