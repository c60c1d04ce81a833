package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marksheet/internal/marks"
	"marksheet/internal/model"
)

// ErrDatasetNotFound is returned when no dataset exists for the given ID.
var ErrDatasetNotFound = errors.New("dataset not found")

const insertBatchSize = 500

// DatasetService stores uploaded mark sheets and reloads them for
// filtering and download.
type DatasetService struct {
	db *gorm.DB
}

func NewDatasetService(db *gorm.DB) *DatasetService {
	return &DatasetService{db: db}
}

// Save persists a parsed table and returns its dataset record.
func (s *DatasetService) Save(table *marks.Table, filename string) (*model.Dataset, error) {
	dataset := &model.Dataset{
		ID:        uuid.NewString(),
		Filename:  filename,
		RowCount:  len(table.Records),
		CreatedAt: time.Now(),
	}

	subjects := make([]model.Subject, 0, len(table.Subjects))
	for i, name := range table.Subjects {
		subjects = append(subjects, model.Subject{DatasetID: dataset.ID, Position: i, Name: name})
	}

	cells := make([]model.Mark, 0, len(table.Records)*len(table.Subjects))
	for row, rec := range table.Records {
		for _, subject := range table.Subjects {
			cells = append(cells, model.Mark{
				DatasetID:   dataset.ID,
				RowIndex:    row,
				StudentName: rec.Name,
				Subject:     subject,
				Score:       rec.Marks[subject],
			})
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dataset).Error; err != nil {
			return err
		}
		if err := tx.Create(&subjects).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(&cells, insertBatchSize).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save dataset: %w", err)
	}

	slog.Info("dataset saved",
		slog.String("dataset_id", dataset.ID),
		slog.String("filename", filename),
		slog.Int("rows", dataset.RowCount),
		slog.Int("subjects", len(subjects)))
	return dataset, nil
}

// Load reconstructs the table for a dataset, records in upload order and
// subjects in header order.
func (s *DatasetService) Load(id string) (*marks.Table, *model.Dataset, error) {
	var dataset model.Dataset
	if err := s.db.First(&dataset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrDatasetNotFound
		}
		return nil, nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	var subjects []model.Subject
	if err := s.db.Where("dataset_id = ?", id).Order("position").Find(&subjects).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load subjects: %w", err)
	}

	var cells []model.Mark
	if err := s.db.Where("dataset_id = ?", id).Order("row_index").Find(&cells).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load marks: %w", err)
	}

	table := &marks.Table{
		Subjects: make([]string, 0, len(subjects)),
		Records:  make([]marks.Record, 0, dataset.RowCount),
	}
	for _, subject := range subjects {
		table.Subjects = append(table.Subjects, subject.Name)
	}

	// Cells arrive ordered by row, so each row's cells are contiguous.
	lastRow := -1
	for _, cell := range cells {
		if cell.RowIndex != lastRow {
			table.Records = append(table.Records, marks.Record{
				Name:  cell.StudentName,
				Marks: make(map[string]int, len(subjects)),
			})
			lastRow = cell.RowIndex
		}
		table.Records[len(table.Records)-1].Marks[cell.Subject] = cell.Score
	}

	return table, &dataset, nil
}

// List returns all stored datasets, newest first.
func (s *DatasetService) List() ([]model.Dataset, error) {
	var datasets []model.Dataset
	if err := s.db.Order("created_at desc").Find(&datasets).Error; err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	return datasets, nil
}

// Delete removes a dataset and all of its rows.
func (s *DatasetService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Dataset{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete dataset: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrDatasetNotFound
		}
		if err := tx.Where("dataset_id = ?", id).Delete(&model.Subject{}).Error; err != nil {
			return fmt.Errorf("failed to delete subjects: %w", err)
		}
		if err := tx.Where("dataset_id = ?", id).Delete(&model.Mark{}).Error; err != nil {
			return fmt.Errorf("failed to delete marks: %w", err)
		}
		return nil
	})
}
