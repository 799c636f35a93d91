package catalog

import (
	"context"
	"database/sql"
)

// CategoryRepo handles categories.
type CategoryRepo struct {
	db DBTX
}

func NewCategoryRepo(db DBTX) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Upsert(ctx context.Context, c Category) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO categories(id, name, sort_order)
	VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 sort_order=excluded.sort_order;
	`, c.ID, c.Name, c.SortOrder)
	return err
}

func (r *CategoryRepo) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, sort_order FROM categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ProductRepo handles products.
type ProductRepo struct {
	db DBTX
}

func NewProductRepo(db DBTX) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Upsert(ctx context.Context, p Product) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO products(sku, category_id, name, description, price_cents, stock)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(sku) DO UPDATE SET
	 category_id=excluded.category_id,
	 name=excluded.name,
	 description=excluded.description,
	 price_cents=excluded.price_cents,
	 stock=excluded.stock;
	`, p.SKU, p.CategoryID, p.Name, p.Description, p.PriceCents, p.Stock)
	return err
}

func (r *ProductRepo) ListAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT sku, category_id, name, description, price_cents, stock
	FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.SKU, &p.CategoryID, &p.Name, &p.Description, &p.PriceCents, &p.Stock); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
