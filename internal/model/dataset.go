package model

import "time"

// Dataset is one uploaded mark sheet held server-side.
type Dataset struct {
	ID        string `gorm:"primaryKey"` // uuid assigned at upload
	Filename  string
	RowCount  int
	CreatedAt time.Time
}

// Subject preserves the header order of a dataset's subject columns.
type Subject struct {
	ID        uint   `gorm:"primaryKey"`
	DatasetID string `gorm:"index"`
	Position  int
	Name      string
}

// Mark is one (student, subject) cell in long format.
type Mark struct {
	ID          uint   `gorm:"primaryKey"`
	DatasetID   string `gorm:"index"`
	RowIndex    int    // upload order within the dataset
	StudentName string
	Subject     string
	Score       int
}
