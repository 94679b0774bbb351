package usecase_test

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journalout "gentlemind/internal/modules/journal/adapter/out"
	"gentlemind/internal/modules/journal/domain"
	journaldto "gentlemind/internal/modules/journal/dto"
	journaloutport "gentlemind/internal/modules/journal/port/out"
	"gentlemind/internal/modules/journal/service"
	"gentlemind/internal/modules/journal/usecase"
	mooddomain "gentlemind/internal/modules/mood/domain"
	apperrors "gentlemind/internal/platform/errors"
	"gentlemind/internal/testutil"
)

func newInteractor(t *testing.T) (*service.SessionLog, *usecase.Interactor) {
	t.Helper()
	return newInteractorIn(t, nil)
}

func newInteractorIn(t *testing.T, loc *time.Location) (*service.SessionLog, *usecase.Interactor) {
	t.Helper()
	log := service.NewSessionLog(testutil.NewMemoryKV(), &testutil.MockLogger{})
	uc := usecase.NewInteractor(log, loc,
		[]journaloutport.Exporter{journalout.JSONExporter{}, journalout.YAMLExporter{}, journalout.MarkdownExporter{}},
		[]journaloutport.Importer{journalout.JSONImporter{}, journalout.YAMLImporter{}, journalout.MarkdownImporter{}},
	)
	return log, uc.(*usecase.Interactor)
}

func TestList(t *testing.T) {
	log, uc := newInteractor(t)
	sad := mooddomain.Depressed
	_, err := log.Append(context.Background(), domain.NewRecord("1", time.Now(), 120, &sad))
	require.NoError(t, err)

	got, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Depressed", got[0].MoodBefore)
	assert.Equal(t, 2.0, got[0].DurationMinutes)
	assert.Empty(t, got[0].MoodAfter)
}

func TestList_DatesInConfiguredLocation(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	log, uc := newInteractorIn(t, bangkok)
	_, err := log.Append(context.Background(), domain.NewRecord("1", time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC), 60, nil))
	require.NoError(t, err)

	got, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-06-02 03:00", got[0].Date.Format("2006-01-02 15:04"))
	assert.Equal(t, bangkok, got[0].Date.Location())
}

func TestExport(t *testing.T) {
	log, uc := newInteractor(t)
	_, err := log.Append(context.Background(), domain.NewRecord("1", time.Now(), 60, nil))
	require.NoError(t, err)

	var buf bytes.Buffer
	out, err := uc.Export(context.Background(), journaldto.ExportInput{Format: " JSON ", Out: &buf})
	require.NoError(t, err)
	assert.Equal(t, journaldto.ExportOutput{Format: "json", Count: 1}, out)
	assert.Contains(t, buf.String(), `"moodBefore"`)
	assert.Contains(t, buf.String(), `"Normal"`)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, uc := newInteractor(t)
	_, err := uc.Export(context.Background(), journaldto.ExportInput{Format: "csv", Out: &bytes.Buffer{}})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "json, markdown, yaml")
}

func TestExport_RequiresWriter(t *testing.T) {
	_, uc := newInteractor(t)
	_, err := uc.Export(context.Background(), journaldto.ExportInput{Format: "yaml"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestImport_SkipsDuplicatesAndInvalid(t *testing.T) {
	ctx := context.Background()
	log, uc := newInteractor(t)
	happy := mooddomain.Happy
	_, err := log.Append(ctx, domain.NewRecord("100", time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), 60, &happy))
	require.NoError(t, err)

	in := strings.NewReader(`[
		{"id":"100","date":"2024-06-01T09:00:00.000Z","durationMinutes":1,"moodBefore":"Happy"},
		{"id":"200","date":"2024-06-02T09:00:00.000Z","durationMinutes":5,"moodBefore":"Angry"},
		{"id":"300","date":"2024-06-03T09:00:00.000Z","durationMinutes":5,"moodBefore":"Grumpy"},
		{"id":"","date":"2024-06-04T09:00:00.000Z","durationMinutes":5,"moodBefore":"Happy"},
		{"id":"200","date":"2024-06-02T09:00:00.000Z","durationMinutes":5,"moodBefore":"Angry"}
	]`)
	out, err := uc.Import(ctx, journaldto.ImportInput{Format: "json", In: in})
	require.NoError(t, err)
	assert.Equal(t, journaldto.ImportOutput{Format: "json", Read: 5, Added: 1, Skipped: 4}, out)

	records := log.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "200", records[1].ID)
	assert.Equal(t, mooddomain.Angry, records[1].MoodBefore)
}

func TestImport_MarkdownExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src, srcUC := newInteractor(t)
	sad := mooddomain.Depressed
	for i, at := range []time.Time{
		time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 2, 21, 30, 0, 0, time.UTC),
	} {
		_, err := src.Append(ctx, domain.NewRecord(strconv.Itoa(i+1), at, 90, &sad))
		require.NoError(t, err)
	}
	var buf bytes.Buffer
	_, err := srcUC.Export(ctx, journaldto.ExportInput{Format: "markdown", Out: &buf})
	require.NoError(t, err)

	dst, dstUC := newInteractor(t)
	out, err := dstUC.Import(ctx, journaldto.ImportInput{Format: "markdown", In: &buf})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Added)
	assert.Equal(t, src.Records(), dst.Records())
}

func TestImport_Errors(t *testing.T) {
	_, uc := newInteractor(t)
	_, err := uc.Import(context.Background(), journaldto.ImportInput{Format: "csv", In: strings.NewReader("")})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "json, markdown, yaml")

	_, err = uc.Import(context.Background(), journaldto.ImportInput{Format: "json"})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = uc.Import(context.Background(), journaldto.ImportInput{Format: "json", In: strings.NewReader("{broken")})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
