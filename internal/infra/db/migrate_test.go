package db_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"pagewatch/internal/infra/db"
)

// Page ids must be unique across the live and archive tables: id-keyed
// operations resolve a bare id by trying one store and falling back to the
// other, which is only sound when the two cannot hand out the same id.
func TestMigrateUp_PageStoresShareOneIDSequence(t *testing.T) {
	database, mock, _ := sqlmock.New()
	defer func() { _ = database.Close() }()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS sources`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE SEQUENCE IF NOT EXISTS page_ids`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	for _, table := range []string{"pages", "archived_pages"} {
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS ` + table +
			`[^;]*DEFAULT nextval\('page_ids'\)`).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS categories`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	for i := 0; i < 5; i++ {
		mock.ExpectExec(`CREATE INDEX IF NOT EXISTS`).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := db.MigrateUp(database); err != nil {
		t.Fatalf("MigrateUp err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
