package importer

import (
	"context"
	"errors"

	"github.com/Hamidziya/crm-edfront/internal/models"
	"github.com/rs/zerolog"
)

// ErrNothingStaged is returned when Submit is called before a file
// has been staged.
var ErrNothingStaged = errors.New("no data to import")

// BulkSubmitter sends one staged batch as a single bulk-create call.
type BulkSubmitter interface {
	BulkCreateTasks(ctx context.Context, tasks []models.CandidateRecord) (*models.BulkCreateResult, error)
}

// Importer runs the lead-import workflow: parse a file, validate it
// against the required columns, stage the surviving records, and
// submit them as one atomic batch. One Importer belongs to one import
// dialog; choosing a new file replaces the whole staged batch.
type Importer struct {
	submitter BulkSubmitter
	log       zerolog.Logger

	batch  []models.CandidateRecord
	source string
}

// New creates an Importer submitting through the given BulkSubmitter.
func New(submitter BulkSubmitter, log zerolog.Logger) *Importer {
	return &Importer{
		submitter: submitter,
		log:       log.With().Str("component", "importer").Logger(),
	}
}

// LoadFile parses and validates an import file, replacing any
// previously staged batch. It returns how many records were staged
// and how many data rows were dropped as incomplete.
func (im *Importer) LoadFile(path string) (staged, dropped int, err error) {
	rows, err := ParseFile(path)
	if err != nil {
		return 0, 0, err
	}

	headerMap, err := BuildHeaderMap(rows[0])
	if err != nil {
		return 0, 0, err
	}

	records, droppedLines := MapRecords(headerMap, rows[1:])
	if len(records) == 0 {
		return 0, len(droppedLines), ErrNoValidRecords
	}

	im.batch = records
	im.source = path

	if len(droppedLines) > 0 {
		im.log.Debug().
			Str("file", path).
			Ints("lines", droppedLines).
			Msg("Dropped incomplete rows")
	}
	im.log.Info().
		Str("file", path).
		Int("staged", len(records)).
		Int("dropped", len(droppedLines)).
		Msg("Import batch staged")

	return len(records), len(droppedLines), nil
}

// Staged returns the currently staged batch.
func (im *Importer) Staged() []models.CandidateRecord {
	return im.batch
}

// Preview returns up to n staged records for display before
// submission.
func (im *Importer) Preview(n int) []models.CandidateRecord {
	if n > len(im.batch) {
		n = len(im.batch)
	}
	return im.batch[:n]
}

// Submit sends the staged batch as a single bulk-create request. On
// failure the batch stays staged so the user can retry without
// re-uploading; there is no automatic retry. On success the batch is
// cleared and the imported count reported.
func (im *Importer) Submit(ctx context.Context) (*models.BulkCreateResult, error) {
	if len(im.batch) == 0 {
		return nil, ErrNothingStaged
	}

	result, err := im.submitter.BulkCreateTasks(ctx, im.batch)
	if err != nil {
		im.log.Error().Err(err).
			Str("file", im.source).
			Int("batch_size", len(im.batch)).
			Msg("Bulk import failed")
		return nil, err
	}

	if result.ImportedCount == 0 {
		result.ImportedCount = len(im.batch)
	}
	im.log.Info().
		Str("file", im.source).
		Int("imported", result.ImportedCount).
		Msg("Import completed")

	im.batch = nil
	im.source = ""
	return result, nil
}
