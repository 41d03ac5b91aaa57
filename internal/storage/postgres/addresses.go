package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/snstore/backend/internal/domain/errors"
	"github.com/snstore/backend/internal/domain/model"
)

const addressColumns = `id, user_id, type, postal_code, street, number, complement, district, city, state, reference, is_default, created_at, updated_at`

func scanAddress(row pgx.Row) (*model.Address, error) {
	var a model.Address
	err := row.Scan(&a.ID, &a.UserID, &a.Type, &a.PostalCode, &a.Street, &a.Number, &a.Complement, &a.District, &a.City, &a.State, &a.Reference, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

const demoteOthersQuery = `UPDATE addresses SET is_default=FALSE, updated_at=NOW() WHERE user_id=$1 AND id <> $2 AND is_default`

// Create inserts the address; when it is default, all siblings are demoted in
// the same transaction so two defaults are never observable.
func (r *addressRepository) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	created := *address
	created.ID = uuid.New()

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if created.IsDefault {
			if _, err := tx.Exec(ctx, demoteOthersQuery, created.UserID, created.ID); err != nil {
				return err
			}
		}

		const insert = `INSERT INTO addresses
                        (id, user_id, type, postal_code, street, number, complement, district, city, state, reference, is_default)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                        RETURNING created_at, updated_at`
		return tx.QueryRow(ctx, insert,
			created.ID, created.UserID, created.Type, created.PostalCode, created.Street, created.Number,
			created.Complement, created.District, created.City, created.State, created.Reference, created.IsDefault,
		).Scan(&created.CreatedAt, &created.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *addressRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	const query = `SELECT ` + addressColumns + ` FROM addresses WHERE id=$1 AND user_id=$2`
	return scanAddress(r.storage.pool.QueryRow(ctx, query, id, userID))
}

func (r *addressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	const query = `SELECT ` + addressColumns + `
                   FROM addresses WHERE user_id=$1
                   ORDER BY is_default DESC, created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *addressRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM addresses WHERE user_id=$1`
	var count int
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *addressRepository) Update(ctx context.Context, address *model.Address) (*model.Address, error) {
	updated := *address

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if updated.IsDefault {
			if _, err := tx.Exec(ctx, demoteOthersQuery, updated.UserID, updated.ID); err != nil {
				return err
			}
		}

		const update = `UPDATE addresses
                        SET type=$3, postal_code=$4, street=$5, number=$6, complement=$7,
                            district=$8, city=$9, state=$10, reference=$11, is_default=$12, updated_at=NOW()
                        WHERE id=$1 AND user_id=$2
                        RETURNING updated_at`
		err := tx.QueryRow(ctx, update,
			updated.ID, updated.UserID, updated.Type, updated.PostalCode, updated.Street, updated.Number,
			updated.Complement, updated.District, updated.City, updated.State, updated.Reference, updated.IsDefault,
		).Scan(&updated.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the address and, when it was the default, promotes the
// newest remaining address of the same user inside the same transaction.
func (r *addressRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const del = `DELETE FROM addresses WHERE id=$1 AND user_id=$2 RETURNING is_default`
		var wasDefault bool
		err := tx.QueryRow(ctx, del, id, userID).Scan(&wasDefault)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !wasDefault {
			return nil
		}

		const promote = `UPDATE addresses SET is_default=TRUE, updated_at=NOW()
                         WHERE id = (SELECT id FROM addresses WHERE user_id=$1 ORDER BY created_at DESC LIMIT 1)`
		_, err = tx.Exec(ctx, promote, userID)
		return err
	})
}

func (r *addressRepository) SetDefault(ctx context.Context, id, userID uuid.UUID) (*model.Address, error) {
	var address *model.Address
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, demoteOthersQuery, userID, id); err != nil {
			return err
		}

		const promote = `UPDATE addresses SET is_default=TRUE, updated_at=NOW()
                         WHERE id=$1 AND user_id=$2
                         RETURNING ` + addressColumns
		a, err := scanAddress(tx.QueryRow(ctx, promote, id, userID))
		if err != nil {
			return err
		}
		address = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}
