package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adventureworks/catalog-api/internal/core/domain"
)

const productColumns = `id, name, product_number, standard_cost, list_price, weight, product_category_id, created_at, updated_at`

// ProductRepository persists products in PostgreSQL. Every mutating operation
// runs inside its own transaction via WithTx.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns all products ordered by id, which matches insertion order for
// the serial primary key.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows.Scan, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p domain.Product
	if err := scanProduct(r.db.QueryRowContext(ctx, query, id).Scan, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	err := WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		query := `INSERT INTO products (name, product_number, standard_cost, list_price, weight, product_category_id, created_at, updated_at)
		          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		          RETURNING id`

		err := tx.QueryRowContext(ctx, query,
			p.Name, p.ProductNumber, p.StandardCost, p.ListPrice, p.Weight,
			p.ProductCategoryID, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update loads the row with a lock, applies the caller's merge function, and
// writes the result back, all inside one transaction. apply sees the stored
// state and may reject the merge (e.g. invariant violation), which rolls the
// transaction back.
func (r *ProductRepository) Update(ctx context.Context, id int64, apply func(p *domain.Product) error) (*domain.Product, error) {
	var out domain.Product
	err := WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		selectQuery := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`

		if err := scanProduct(tx.QueryRowContext(ctx, selectQuery, id).Scan, &out); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrProductNotFound
			}
			return fmt.Errorf("select product: %w", err)
		}

		if err := apply(&out); err != nil {
			return err
		}
		out.UpdatedAt = time.Now().UTC()

		updateQuery := `UPDATE products
		                SET name = $1, product_number = $2, standard_cost = $3, list_price = $4, weight = $5, product_category_id = $6, updated_at = $7
		                WHERE id = $8`

		if _, err := tx.ExecContext(ctx, updateQuery,
			out.Name, out.ProductNumber, out.StandardCost, out.ListPrice, out.Weight,
			out.ProductCategoryID, out.UpdatedAt, out.ID); err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return WithTx(ctx, r.db, nil, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		if affected == 0 {
			return domain.ErrProductNotFound
		}
		return nil
	})
}

// scanProduct reads one product row in productColumns order.
func scanProduct(scan func(dest ...any) error, p *domain.Product) error {
	return scan(&p.ID, &p.Name, &p.ProductNumber, &p.StandardCost, &p.ListPrice,
		&p.Weight, &p.ProductCategoryID, &p.CreatedAt, &p.UpdatedAt)
}
