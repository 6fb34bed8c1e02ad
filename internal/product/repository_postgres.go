package product

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns the full catalog ordered by product name. Rows without a
// category are skipped and attribute defaults are applied, matching the
// normalization contract of the dataset provider.
// If the table/query is not available the function returns an empty slice (caller-friendly).
func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(`SELECT "productName", category, subcategory, price, "healthyIndex", discount, "basicNeedsIndex" FROM products ORDER BY "productName"`)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, ok := scanProduct(rows)
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByName(name string) (Product, error) {
	row := r.db.QueryRow(`SELECT "productName", category, subcategory, price, "healthyIndex", discount, "basicNeedsIndex" FROM products WHERE "productName" = $1`, name)
	p, ok := scanProduct(row)
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

// Reset replaces the products table content with the provided list.
func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM products`); err != nil {
		tx.Rollback()
		return err
	}
	for _, p := range sanitize(products) {
		if _, err := tx.Exec(
			`INSERT INTO products ("productName", category, subcategory, price, "healthyIndex", discount, "basicNeedsIndex") VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.Name, p.Category, p.Subcategory, p.Price, p.HealthyIndex, p.Discount, p.BasicNeedsIndex,
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, bool) {
	var (
		name       string
		category   sql.NullString
		subcat     sql.NullString
		price      sql.NullString
		healthy    sql.NullFloat64
		discount   sql.NullInt64
		basicNeeds sql.NullInt64
	)
	if err := row.Scan(&name, &category, &subcat, &price, &healthy, &discount, &basicNeeds); err != nil {
		return Product{}, false
	}
	// rows without a category never reach the engine
	if !category.Valid || category.String == "" {
		return Product{}, false
	}

	p := Product{Name: name, Category: category.String, BasicNeedsIndex: BasicNeedsNone}
	if subcat.Valid && subcat.String != "" {
		p.Subcategory = &subcat.String
	}
	if price.Valid {
		// price is stored as text in some dumps and uses a comma separator
		if v, err := NormalizePrice(price.String); err == nil {
			p.Price = v
		}
	}
	if healthy.Valid {
		p.HealthyIndex = healthy.Float64
	}
	if discount.Valid {
		p.Discount = int(discount.Int64)
	}
	if basicNeeds.Valid {
		p.BasicNeedsIndex = int(basicNeeds.Int64)
	}
	return p, true
}
