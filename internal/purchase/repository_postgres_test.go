package purchase

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func purchaseColumns() []string {
	return []string{"personId", "productName", "amount"}
}

func TestListCoercesAmounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(purchaseColumns()).
		AddRow(1, "Mar Golden", "3").
		AddRow(1, "Banane", "2,5").
		// non-numeric / missing amounts coerce to 0
		AddRow(2, "Vin Jidvei", "n/a").
		AddRow(2, "Sos de Soia", nil)
	mock.ExpectQuery("FROM purchases").WillReturnRows(rows)

	records := repo.List()
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	if records[0].Amount != 3 {
		t.Fatalf("expected amount 3, got %v", records[0].Amount)
	}
	if records[1].Amount != 2.5 {
		t.Fatalf("expected comma amount normalized to 2.5, got %v", records[1].Amount)
	}
	if records[2].Amount != 0 || records[3].Amount != 0 {
		t.Fatalf("expected bad amounts coerced to 0, got %v and %v", records[2].Amount, records[3].Amount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByPerson(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(purchaseColumns()).
		AddRow(7, "Paine Alba", "1")
	mock.ExpectQuery("FROM purchases").WithArgs(7).WillReturnRows(rows)

	records := repo.ListByPerson(7)
	if len(records) != 1 || records[0].PersonID != 7 {
		t.Fatalf("unexpected records %+v", records)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListQueryErrorReturnsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM purchases").WillReturnError(errors.New("no such table"))

	if got := repo.List(); len(got) != 0 {
		t.Fatalf("expected empty slice on query error, got %v", got)
	}
}

func TestResetReplacesTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM purchases").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO purchases").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Reset([]Record{{PersonID: 1, ProductName: "Banane", Amount: 2}}); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
