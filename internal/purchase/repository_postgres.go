package purchase

import (
	"database/sql"
	"strconv"
	"strings"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all purchase rows ordered by person then product.
// If the table/query is not available the function returns an empty slice (caller-friendly).
func (r *PostgresRepository) List() []Record {
	rows, err := r.db.Query(`SELECT "personId", "productName", amount FROM purchases ORDER BY "personId", "productName"`)
	if err != nil {
		return []Record{}
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *PostgresRepository) ListByPerson(personID int) []Record {
	rows, err := r.db.Query(`SELECT "personId", "productName", amount FROM purchases WHERE "personId" = $1 ORDER BY "productName"`, personID)
	if err != nil {
		return []Record{}
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Reset replaces the purchases table content with the provided list.
func (r *PostgresRepository) Reset(records []Record) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM purchases`); err != nil {
		tx.Rollback()
		return err
	}
	for _, rec := range sanitize(records) {
		if _, err := tx.Exec(
			`INSERT INTO purchases ("personId", "productName", amount) VALUES ($1, $2, $3)`,
			rec.PersonID, rec.ProductName, rec.Amount,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// Version returns "" — Postgres snapshots are not tracked, so callers always
// take the cold (recompute) path.
func (r *PostgresRepository) Version() string { return "" }

func scanRecords(rows *sql.Rows) []Record {
	out := make([]Record, 0)
	for rows.Next() {
		var (
			personID int
			name     string
			amount   sql.NullString
		)
		if err := rows.Scan(&personID, &name, &amount); err != nil {
			continue
		}
		rec := Record{PersonID: personID, ProductName: name}
		if amount.Valid {
			// amount may be stored as text; non-numeric values coerce to 0
			s := strings.ReplaceAll(strings.TrimSpace(amount.String), ",", ".")
			if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
				rec.Amount = v
			}
		}
		out = append(out, rec)
	}
	return out
}
