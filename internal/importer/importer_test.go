package importer

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Hamidziya/crm-edfront/internal/mocks"
	"github.com/Hamidziya/crm-edfront/internal/models"
	"github.com/rs/zerolog"
)

const validCSV = "Title,Description,Name,Email,Mobile\n" +
	"Lead A,First contact,John,john@example.com,1234567890\n"

func newTestImporter() (*Importer, *mocks.MockBulkSubmitter) {
	submitter := mocks.NewMockBulkSubmitter()
	return New(submitter, zerolog.Nop()), submitter
}

func TestLoadFileSingleRecord(t *testing.T) {
	im, _ := newTestImporter()
	path := writeTempFile(t, "leads.csv", validCSV)

	staged, dropped, err := im.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if staged != 1 || dropped != 0 {
		t.Errorf("LoadFile() = (%d, %d), want (1, 0)", staged, dropped)
	}

	preview := im.Preview(5)
	if len(preview) != 1 {
		t.Fatalf("Preview() returned %d records, want 1", len(preview))
	}
	want := models.CandidateRecord{
		Title:       "Lead A",
		Description: "First contact",
		Name:        "John",
		Email:       "john@example.com",
		Mobile:      "1234567890",
	}
	if preview[0] != want {
		t.Errorf("Preview() = %v, want %v", preview[0], want)
	}
}

func TestLoadFileMissingColumn(t *testing.T) {
	im, _ := newTestImporter()
	path := writeTempFile(t, "leads.csv",
		"Title,Description,Name,Email\nLead A,First,John,john@example.com\n")

	_, _, err := im.LoadFile(path)
	var missingErr *MissingColumnsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("LoadFile() error = %v, want MissingColumnsError", err)
	}
	if len(missingErr.Missing) != 1 || missingErr.Missing[0] != "mobile" {
		t.Errorf("missing columns = %v, want [mobile]", missingErr.Missing)
	}
	if len(im.Staged()) != 0 {
		t.Errorf("staged %d records after missing-column abort, want 0", len(im.Staged()))
	}
}

func TestLoadFileDropsIncompleteRows(t *testing.T) {
	im, _ := newTestImporter()
	path := writeTempSheet(t, "leads.xlsx", [][]interface{}{
		{"Title", "Description", "Name", "Email", "Mobile"},
		{"Lead A", "First", "John", "john@example.com", "123"},
		{"Lead B", "Second", "Jane", "", "456"},
		{"Lead C", "Third", "Jim", "jim@example.com", "789"},
	})

	staged, dropped, err := im.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if staged != 2 || dropped != 1 {
		t.Errorf("LoadFile() = (%d, %d), want (2, 1)", staged, dropped)
	}
}

func TestLoadFileNoValidRecords(t *testing.T) {
	im, _ := newTestImporter()
	path := writeTempFile(t, "leads.csv",
		"Title,Description,Name,Email,Mobile\nLead A,First,John,,\n")

	_, dropped, err := im.LoadFile(path)
	if !errors.Is(err, ErrNoValidRecords) {
		t.Fatalf("LoadFile() error = %v, want ErrNoValidRecords", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
}

func TestLoadFileReplacesBatch(t *testing.T) {
	im, _ := newTestImporter()

	first := writeTempFile(t, "first.csv", validCSV)
	if _, _, err := im.LoadFile(first); err != nil {
		t.Fatalf("first LoadFile() error: %v", err)
	}

	second := writeTempFile(t, "second.csv",
		"Title,Description,Name,Email,Mobile\n"+
			"Lead B,Second,Jane,jane@example.com,456\n"+
			"Lead C,Third,Jim,jim@example.com,789\n")
	if _, _, err := im.LoadFile(second); err != nil {
		t.Fatalf("second LoadFile() error: %v", err)
	}

	if len(im.Staged()) != 2 {
		t.Errorf("staged %d records, want 2 (new file replaces the batch)", len(im.Staged()))
	}
	if im.Staged()[0].Title != "Lead B" {
		t.Errorf("stale record survived the reload: %v", im.Staged()[0])
	}
}

func TestLoadFileIdempotent(t *testing.T) {
	im, _ := newTestImporter()
	path := writeTempFile(t, "leads.csv", validCSV+"Lead B,Second,Jane,jane@example.com,456\n")

	if _, _, err := im.LoadFile(path); err != nil {
		t.Fatalf("first LoadFile() error: %v", err)
	}
	first := append([]models.CandidateRecord(nil), im.Staged()...)

	if _, _, err := im.LoadFile(path); err != nil {
		t.Fatalf("second LoadFile() error: %v", err)
	}
	if !reflect.DeepEqual(first, im.Staged()) {
		t.Errorf("re-parsing the same file staged different batches: %v vs %v", first, im.Staged())
	}
}

func TestSubmitSuccess(t *testing.T) {
	im, submitter := newTestImporter()
	path := writeTempFile(t, "leads.csv", validCSV)
	if _, _, err := im.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	result, err := im.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if result.ImportedCount != 1 {
		t.Errorf("ImportedCount = %d, want 1", result.ImportedCount)
	}
	if submitter.Calls != 1 {
		t.Errorf("submitter called %d times, want 1", submitter.Calls)
	}
	if len(submitter.LastBatch) != 1 {
		t.Errorf("submitted batch size %d, want 1", len(submitter.LastBatch))
	}
	if len(im.Staged()) != 0 {
		t.Errorf("batch not cleared after successful submit")
	}
}

func TestSubmitFailurePreservesBatch(t *testing.T) {
	im, submitter := newTestImporter()
	submitter.Err = errors.New("Import failed on the server")

	path := writeTempFile(t, "leads.csv", validCSV)
	if _, _, err := im.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if _, err := im.Submit(context.Background()); err == nil {
		t.Fatal("Submit() expected error, got nil")
	}
	if len(im.Staged()) != 1 {
		t.Fatalf("batch lost after failed submit, staged %d", len(im.Staged()))
	}

	// A manual retry reuses the preserved batch
	submitter.Err = nil
	result, err := im.Submit(context.Background())
	if err != nil {
		t.Fatalf("retry Submit() error: %v", err)
	}
	if result.ImportedCount != 1 {
		t.Errorf("retry ImportedCount = %d, want 1", result.ImportedCount)
	}
	if submitter.Calls != 2 {
		t.Errorf("submitter called %d times, want 2", submitter.Calls)
	}
}

func TestSubmitNothingStaged(t *testing.T) {
	im, submitter := newTestImporter()
	if _, err := im.Submit(context.Background()); !errors.Is(err, ErrNothingStaged) {
		t.Errorf("Submit() error = %v, want ErrNothingStaged", err)
	}
	if submitter.Calls != 0 {
		t.Errorf("submitter called with nothing staged")
	}
}

func TestSubmitUsesServerCount(t *testing.T) {
	im, submitter := newTestImporter()
	submitter.Result = &models.BulkCreateResult{Message: "ok", ImportedCount: 7}

	path := writeTempFile(t, "leads.csv", validCSV)
	if _, _, err := im.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	result, err := im.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if result.ImportedCount != 7 {
		t.Errorf("ImportedCount = %d, want the server-provided 7", result.ImportedCount)
	}
}

func BenchmarkMapRecords(b *testing.B) {
	headerMap, _ := BuildHeaderMap([]string{"title", "description", "name", "email", "mobile"})
	rows := make([][]string, 1000)
	for i := range rows {
		rows[i] = []string{"Lead", "Contact made at expo", "John Smith", "john@example.com", "1234567890"}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MapRecords(headerMap, rows)
	}
}
