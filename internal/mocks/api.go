package mocks

import (
	"context"

	"github.com/Hamidziya/crm-edfront/internal/models"
)

// MockBulkSubmitter is a mock implementation of importer.BulkSubmitter
type MockBulkSubmitter struct {
	Result    *models.BulkCreateResult
	Err       error
	Calls     int
	LastBatch []models.CandidateRecord
}

func NewMockBulkSubmitter() *MockBulkSubmitter {
	return &MockBulkSubmitter{}
}

func (m *MockBulkSubmitter) BulkCreateTasks(ctx context.Context, tasks []models.CandidateRecord) (*models.BulkCreateResult, error) {
	m.Calls++
	m.LastBatch = append([]models.CandidateRecord(nil), tasks...)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return &models.BulkCreateResult{Message: "Leads imported successfully", ImportedCount: len(tasks)}, nil
}
