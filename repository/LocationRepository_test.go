package repository

import (
	"regexp"
	"testing"

	"backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkInsertLocationsResolvesParentsInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := []models.FlatLocationRow{
		{Name: "Site", LocationType: "site", SortOrder: 1},
		{Name: "Main Building", LocationType: "building", ParentName: "Site", SortOrder: 2},
		{Name: "Floor 1", LocationType: "floor", ParentName: "Main Building", SortOrder: 3},
	}

	insert := regexp.QuoteMeta(`INSERT INTO location`)

	mock.ExpectBegin()
	mock.ExpectQuery(insert).
		WithArgs(7, "Site", "site", nil, nil, 0.0, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery(insert).
		WithArgs(7, "Main Building", "building", 100, nil, 0.0, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
	mock.ExpectQuery(insert).
		WithArgs(7, "Floor 1", "floor", 101, nil, 0.0, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(102))
	mock.ExpectCommit()

	ids, err := BulkInsertLocations(db, 7, rows)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 101, 102}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkInsertLocationsResolvesParentFromEarlierBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := []models.FlatLocationRow{
		{Name: "Fit-Out Zone 1", LocationType: "zone", ParentName: "Floor 1", Phase: "finishing", SortOrder: 1},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM location WHERE project_id = $1 AND name = $2`)).
		WithArgs(7, "Floor 1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(55))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO location`)).
		WithArgs(7, "Fit-Out Zone 1", "zone", 55, "finishing", 0.0, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(200))
	mock.ExpectCommit()

	ids, err := BulkInsertLocations(db, 7, rows)
	require.NoError(t, err)
	assert.Equal(t, []int{200}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkInsertLocationsRollsBackOnMissingParent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := []models.FlatLocationRow{
		{Name: "Orphan Zone", LocationType: "zone", ParentName: "Nowhere", SortOrder: 1},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM location WHERE project_id = $1 AND name = $2`)).
		WithArgs(7, "Nowhere").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err = BulkInsertLocations(db, 7, rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountZonesByProject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM location`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(51))

	count, err := CountZonesByProject(db, 7)
	require.NoError(t, err)
	assert.Equal(t, 51, count)
}
