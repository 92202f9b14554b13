package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implémentation du port ProductRepository sur PostgreSQL
// (utilisable avec le pool ou une transaction).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construit l'adaptateur de persistance des produits.
// Passer le pool ou une tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.name, p.description,
	c.id, c.name, c.description,
	p.price, p.currency,
	p.quantity, p.min_threshold, p.max_capacity,
	p.supplier_id, p.created_at, p.updated_at`

const productFrom = ` FROM products p JOIN categories c ON c.id = p.category_id`

// statusPredicate traduit un StockStatus en prédicat SQL sur les colonnes de
// stock. Même ordre de priorité que Stock.Status().
func statusPredicate(status entity.StockStatus) string {
	switch status {
	case entity.StatusOutOfStock:
		return `p.quantity = 0`
	case entity.StatusLowStock:
		return `p.quantity > 0 AND p.quantity <= p.min_threshold`
	case entity.StatusOverstocked:
		return `p.quantity > p.max_capacity AND p.quantity > p.min_threshold`
	default:
		return `p.quantity > p.min_threshold AND p.quantity <= p.max_capacity`
	}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description,
		&p.Category.ID, &p.Category.Name, &p.Category.Description,
		&p.Price.Amount, &p.Price.Currency,
		&p.Stock.CurrentQuantity, &p.Stock.MinThreshold, &p.Stock.MaxCapacity,
		&p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID retourne le produit ou nil s'il n'existe pas.
func (r *ProductRepo) FindByID(id entity.ProductID) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT`+productColumns+productFrom+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// FindByIDForUpdate verrouille la ligne produit pour la durée de la
// transaction courante. La catégorie est lue séparément : FOR UPDATE ne
// s'applique pas à une jointure sur la table categories.
func (r *ProductRepo) FindByIDForUpdate(id entity.ProductID) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, description, category_id, price, currency,
		       quantity, min_threshold, max_capacity,
		       supplier_id, created_at, updated_at
		FROM products WHERE id = $1 FOR UPDATE`, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Category.ID, &p.Price.Amount, &p.Price.Currency,
		&p.Stock.CurrentQuantity, &p.Stock.MinThreshold, &p.Stock.MaxCapacity,
		&p.SupplierID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	err = r.q.QueryRow(context.Background(),
		`SELECT name, description FROM categories WHERE id = $1`, p.Category.ID).
		Scan(&p.Category.Name, &p.Category.Description)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get product category: %w", err)
	}
	return &p, nil
}

// FindAll liste tous les produits, du plus ancien au plus récent.
func (r *ProductRepo) FindAll() ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+` ORDER BY p.created_at, p.id`, nil)
}

// FindByCategory liste les produits d'une catégorie.
func (r *ProductRepo) FindByCategory(categoryID entity.CategoryID) ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+
		` WHERE p.category_id = $1 ORDER BY p.created_at, p.id`, []any{categoryID})
}

// FindBySupplier liste les produits d'un fournisseur.
func (r *ProductRepo) FindBySupplier(supplierID entity.SupplierID) ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+
		` WHERE p.supplier_id = $1 ORDER BY p.created_at, p.id`, []any{supplierID})
}

// FindByStatus liste les produits dans un état de stock donné.
func (r *ProductRepo) FindByStatus(status entity.StockStatus) ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+
		` WHERE `+statusPredicate(status)+` ORDER BY p.created_at, p.id`, nil)
}

// FindLowStock liste les produits en stock faible. Les ruptures n'en font pas
// partie : elles ont leur propre statut.
func (r *ProductRepo) FindLowStock() ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+
		` WHERE p.quantity > 0 AND p.quantity <= p.min_threshold ORDER BY p.created_at, p.id`, nil)
}

// Search recherche sur le nom, la description et le nom de la catégorie,
// insensible à la casse (ILIKE). L'insensibilité aux accents passe par
// l'extension unaccent si la base la fournit ; sinon la recherche reste
// sensible aux accents.
func (r *ProductRepo) Search(query string) ([]*entity.Product, error) {
	return r.list(`SELECT`+productColumns+productFrom+`
		WHERE p.name ILIKE '%' || $1 || '%'
		   OR p.description ILIKE '%' || $1 || '%'
		   OR c.name ILIKE '%' || $1 || '%'
		ORDER BY p.created_at, p.id`, []any{query})
}

// Save insère ou remplace le produit (upsert par ID).
func (r *ProductRepo) Save(product *entity.Product) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO products (id, name, description, category_id, price, currency,
		                      quantity, min_threshold, max_capacity,
		                      supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
		    name = EXCLUDED.name, description = EXCLUDED.description,
		    category_id = EXCLUDED.category_id,
		    price = EXCLUDED.price, currency = EXCLUDED.currency,
		    quantity = EXCLUDED.quantity, min_threshold = EXCLUDED.min_threshold,
		    max_capacity = EXCLUDED.max_capacity,
		    supplier_id = EXCLUDED.supplier_id, updated_at = EXCLUDED.updated_at`,
		product.ID, product.Name, product.Description, product.Category.ID,
		product.Price.Amount, product.Price.Currency,
		product.Stock.CurrentQuantity, product.Stock.MinThreshold, product.Stock.MaxCapacity,
		product.SupplierID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// Delete supprime le produit, retourne vrai s'il existait.
func (r *ProductRepo) Delete(id entity.ProductID) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Exists vrai si le produit est présent.
func (r *ProductRepo) Exists(id entity.ProductID) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product: %w", err)
	}
	return exists, nil
}

// Count nombre total de produits.
func (r *ProductRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountByStatus nombre de produits dans un état de stock donné.
func (r *ProductRepo) CountByStatus(status entity.StockStatus) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM products p WHERE `+statusPredicate(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by status: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) list(query string, args []any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
