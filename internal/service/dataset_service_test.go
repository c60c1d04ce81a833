package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marksheet/internal/marks"
	"marksheet/internal/model"
	"marksheet/internal/service"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Dataset{}, &model.Subject{}, &model.Mark{}))
	return db
}

func sampleTable() *marks.Table {
	return &marks.Table{
		Subjects: []string{"Math", "English", "Science"},
		Records: []marks.Record{
			{Name: "John Smith", Marks: map[string]int{"Math": 85, "English": 78, "Science": 90}},
			{Name: "Jane Doe", Marks: map[string]int{"Math": 92, "English": 35, "Science": 41}},
			{Name: "Bob Stone", Marks: map[string]int{"Math": 20, "English": 30, "Science": 40}},
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	svc := service.NewDatasetService(setupTestDB(t))

	dataset, err := svc.Save(sampleTable(), "marks.csv")
	require.NoError(t, err)
	assert.NotEmpty(t, dataset.ID)
	assert.Equal(t, "marks.csv", dataset.Filename)
	assert.Equal(t, 3, dataset.RowCount)

	loaded, meta, err := svc.Load(dataset.ID)
	require.NoError(t, err)
	assert.Equal(t, dataset.ID, meta.ID)
	assert.Equal(t, sampleTable(), loaded)
}

func TestLoadPreservesOrder(t *testing.T) {
	svc := service.NewDatasetService(setupTestDB(t))

	dataset, err := svc.Save(sampleTable(), "marks.csv")
	require.NoError(t, err)

	loaded, _, err := svc.Load(dataset.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Math", "English", "Science"}, loaded.Subjects)
	names := make([]string, 0, len(loaded.Records))
	for _, rec := range loaded.Records {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"John Smith", "Jane Doe", "Bob Stone"}, names)
}

func TestLoadNotFound(t *testing.T) {
	svc := service.NewDatasetService(setupTestDB(t))

	_, _, err := svc.Load("no-such-id")
	assert.ErrorIs(t, err, service.ErrDatasetNotFound)
}

func TestList(t *testing.T) {
	svc := service.NewDatasetService(setupTestDB(t))

	_, err := svc.Save(sampleTable(), "first.csv")
	require.NoError(t, err)
	_, err = svc.Save(sampleTable(), "second.csv")
	require.NoError(t, err)

	datasets, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, datasets, 2)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewDatasetService(db)

	dataset, err := svc.Save(sampleTable(), "marks.csv")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(dataset.ID))

	_, _, err = svc.Load(dataset.ID)
	assert.ErrorIs(t, err, service.ErrDatasetNotFound)

	var cells int64
	db.Model(&model.Mark{}).Where("dataset_id = ?", dataset.ID).Count(&cells)
	assert.Zero(t, cells)
}

func TestDeleteNotFound(t *testing.T) {
	svc := service.NewDatasetService(setupTestDB(t))

	assert.ErrorIs(t, svc.Delete("no-such-id"), service.ErrDatasetNotFound)
}
