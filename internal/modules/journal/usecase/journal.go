package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gentlemind/internal/modules/journal/domain"
	journaldto "gentlemind/internal/modules/journal/dto"
	journalin "gentlemind/internal/modules/journal/port/in"
	journalout "gentlemind/internal/modules/journal/port/out"
	"gentlemind/internal/modules/journal/service"
	apperrors "gentlemind/internal/platform/errors"
)

type Interactor struct {
	log       *service.SessionLog
	loc       *time.Location
	exporters map[string]journalout.Exporter
	importers map[string]journalout.Importer
}

// NewInteractor lists record dates in loc, the same zone the calendar groups
// days by. A nil loc means UTC.
func NewInteractor(log *service.SessionLog, loc *time.Location, exporters []journalout.Exporter, importers []journalout.Importer) journalin.Usecase {
	if loc == nil {
		loc = time.UTC
	}
	i := &Interactor{
		log:       log,
		loc:       loc,
		exporters: make(map[string]journalout.Exporter, len(exporters)),
		importers: make(map[string]journalout.Importer, len(importers)),
	}
	for _, e := range exporters {
		i.exporters[e.Format()] = e
	}
	for _, im := range importers {
		i.importers[im.Format()] = im
	}
	return i
}

func (i *Interactor) List(context.Context) ([]journaldto.RecordOutput, error) {
	records := i.log.Records()
	out := make([]journaldto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toOutput(r, i.loc))
	}
	return out, nil
}

func (i *Interactor) Export(_ context.Context, input journaldto.ExportInput) (journaldto.ExportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	exporter, ok := i.exporters[format]
	if !ok {
		return journaldto.ExportOutput{}, fmt.Errorf("%w: unsupported export format %q (want one of %s)", apperrors.ErrInvalidInput, input.Format, strings.Join(i.formats(), ", "))
	}
	if input.Out == nil {
		return journaldto.ExportOutput{}, fmt.Errorf("%w: export writer is required", apperrors.ErrInvalidInput)
	}
	records := i.log.Records()
	if err := exporter.Export(input.Out, records); err != nil {
		return journaldto.ExportOutput{}, fmt.Errorf("export %s: %w", format, err)
	}
	return journaldto.ExportOutput{Format: format, Count: len(records)}, nil
}

// Import reads records in the given format and adds the valid ones that are
// not in the log yet. Invalid and duplicate records are counted as skipped.
func (i *Interactor) Import(ctx context.Context, input journaldto.ImportInput) (journaldto.ImportOutput, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	importer, ok := i.importers[format]
	if !ok {
		return journaldto.ImportOutput{}, fmt.Errorf("%w: unsupported import format %q (want one of %s)", apperrors.ErrInvalidInput, input.Format, strings.Join(keys(i.importers), ", "))
	}
	if input.In == nil {
		return journaldto.ImportOutput{}, fmt.Errorf("%w: import reader is required", apperrors.ErrInvalidInput)
	}
	records, err := importer.Import(input.In)
	if err != nil {
		return journaldto.ImportOutput{}, fmt.Errorf("%w: import %s: %v", apperrors.ErrInvalidInput, format, err)
	}

	valid := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if r.Validate() == nil {
			valid = append(valid, r)
		}
	}
	added, err := i.log.Merge(ctx, valid)
	out := journaldto.ImportOutput{Format: format, Read: len(records), Added: added, Skipped: len(records) - added}
	if err != nil {
		return out, fmt.Errorf("import %s: %w", format, err)
	}
	return out, nil
}

func (i *Interactor) formats() []string {
	return keys(i.exporters)
}

func keys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toOutput(r domain.Record, loc *time.Location) journaldto.RecordOutput {
	out := journaldto.RecordOutput{
		ID:              r.ID,
		Date:            r.Date.In(loc),
		DurationMinutes: r.DurationMinutes,
		MoodBefore:      string(r.MoodBefore),
	}
	if r.MoodAfter != nil {
		out.MoodAfter = string(*r.MoodAfter)
	}
	return out
}
