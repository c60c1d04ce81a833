package handler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marksheet/internal/marks"
	"marksheet/internal/model"
	"marksheet/internal/service"
)

const testThreshold = 40

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Dataset{}, &model.Subject{}, &model.Mark{}))
	return db
}

// seedDataset stores a small mark sheet and returns its dataset ID.
func seedDataset(t *testing.T, svc *service.DatasetService) string {
	t.Helper()

	table := &marks.Table{
		Subjects: []string{"Math", "English"},
		Records: []marks.Record{
			{Name: "John Smith", Marks: map[string]int{"Math": 85, "English": 78}},
			{Name: "Jane Doe", Marks: map[string]int{"Math": 92, "English": 35}},
			{Name: "Bob Stone", Marks: map[string]int{"Math": 20, "English": 30}},
		},
	}
	dataset, err := svc.Save(table, "marks.csv")
	require.NoError(t, err)
	return dataset.ID
}
