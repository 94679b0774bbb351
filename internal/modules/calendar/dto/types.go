package dto

type MonthInput struct {
	Year  int
	Month int
}

type DayOutput struct {
	Date         string
	Day          int
	TotalMinutes float64
	Sessions     int
	LastMood     string
	Today        bool
}

type MonthOutput struct {
	Year          int
	Month         int
	Leading       int
	Days          []DayOutput
	TotalMinutes  float64
	TotalSessions int
}

type TrendOutput struct {
	Days []DayOutput
}
