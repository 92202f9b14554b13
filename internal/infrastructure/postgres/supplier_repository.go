package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/babetech/borastock/internal/domain/entity"
	"github.com/babetech/borastock/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implémentation du port SupplierRepository sur PostgreSQL.
// L'adresse est optionnelle : colonnes NULL quand absente.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construit l'adaptateur de persistance des fournisseurs.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `
	id, name, email, phone, website,
	street, city, postal_code, country,
	active, created_at, updated_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	var street, city, postalCode, country *string
	err := row.Scan(
		&s.ID, &s.Name, &s.ContactInfo.Email, &s.ContactInfo.Phone, &s.ContactInfo.Website,
		&street, &city, &postalCode, &country,
		&s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if street != nil {
		s.Address = &entity.Address{Street: *street, City: *city, PostalCode: *postalCode, Country: *country}
	}
	return &s, nil
}

func (r *SupplierRepo) FindByID(id entity.SupplierID) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(context.Background(),
		`SELECT`+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func (r *SupplierRepo) FindAll() ([]*entity.Supplier, error) {
	return r.list(`SELECT`+supplierColumns+` FROM suppliers ORDER BY created_at, id`, nil)
}

func (r *SupplierRepo) FindActive() ([]*entity.Supplier, error) {
	return r.list(`SELECT`+supplierColumns+` FROM suppliers WHERE active ORDER BY created_at, id`, nil)
}

// FindByName liste les fournisseurs dont le nom contient la chaîne donnée,
// insensible à la casse (ILIKE).
func (r *SupplierRepo) FindByName(name string) ([]*entity.Supplier, error) {
	return r.list(`SELECT`+supplierColumns+
		` FROM suppliers WHERE name ILIKE '%' || $1 || '%' ORDER BY created_at, id`,
		[]any{name})
}

// Search recherche sur le nom et l'email de contact, insensible à la casse
// (ILIKE).
func (r *SupplierRepo) Search(query string) ([]*entity.Supplier, error) {
	return r.list(`SELECT`+supplierColumns+`
		FROM suppliers
		WHERE name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY created_at, id`,
		[]any{query})
}

// Save insère ou remplace le fournisseur (upsert par ID).
func (r *SupplierRepo) Save(supplier *entity.Supplier) error {
	var street, city, postalCode, country *string
	if supplier.Address != nil {
		street, city = &supplier.Address.Street, &supplier.Address.City
		postalCode, country = &supplier.Address.PostalCode, &supplier.Address.Country
	}
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO suppliers (id, name, email, phone, website,
		                       street, city, postal_code, country,
		                       active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
		    name = EXCLUDED.name,
		    email = EXCLUDED.email, phone = EXCLUDED.phone, website = EXCLUDED.website,
		    street = EXCLUDED.street, city = EXCLUDED.city,
		    postal_code = EXCLUDED.postal_code, country = EXCLUDED.country,
		    active = EXCLUDED.active, updated_at = EXCLUDED.updated_at`,
		supplier.ID, supplier.Name,
		supplier.ContactInfo.Email, supplier.ContactInfo.Phone, supplier.ContactInfo.Website,
		street, city, postalCode, country,
		supplier.Active, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) Delete(id entity.SupplierID) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete supplier: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *SupplierRepo) Exists(id entity.SupplierID) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists supplier: %w", err)
	}
	return exists, nil
}

func (r *SupplierRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM suppliers`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return n, nil
}

func (r *SupplierRepo) CountActive() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM suppliers WHERE active`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active suppliers: %w", err)
	}
	return n, nil
}

func (r *SupplierRepo) list(query string, args []any) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
