package dto

import (
	"io"
	"time"
)

type RecordOutput struct {
	ID              string
	Date            time.Time
	DurationMinutes float64
	MoodBefore      string
	MoodAfter       string
}

type ExportInput struct {
	Format string
	Out    io.Writer
}

type ExportOutput struct {
	Format string
	Count  int
}

type ImportInput struct {
	Format string
	In     io.Reader
}

type ImportOutput struct {
	Format  string
	Read    int
	Added   int
	Skipped int
}
