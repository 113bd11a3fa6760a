// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/service-launcher/internal/logger"
	"github.com/MKhiriev/service-launcher/models"
)

// connectionRepository is the SQLite-backed implementation of
// [ConnectionRepository].
type connectionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewConnectionRepository constructs a [ConnectionRepository] over db.
func NewConnectionRepository(db *DB, logger *logger.Logger) ConnectionRepository {
	logger.Debug().Msg("creating connection repository")
	return &connectionRepository{db: db, logger: logger, now: time.Now}
}

func (r *connectionRepository) List(ctx context.Context, filter models.ConnectionFilter) ([]models.Connection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListConnectionsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*connectionRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*connectionRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.Connection
	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			log.Err(err).Str("func", "*connectionRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out = append(out, c)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*connectionRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func (r *connectionRepository) Get(ctx context.Context, id string) (models.Connection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetConnectionQuery(id)
	if err != nil {
		return models.Connection{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanConnection(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Connection{}, ErrConnectionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*connectionRepository.Get").Str("id", id).Msg("error scanning row")
		return models.Connection{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return c, nil
}

func (r *connectionRepository) Add(ctx context.Context, c models.Connection) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertConnectionQuery(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrConnectionExists
		}
		log.Err(err).Str("func", "*connectionRepository.Add").Str("id", c.ID).Msg("error inserting connection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *connectionRepository) Update(ctx context.Context, c models.Connection) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateConnectionQuery(c, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConnectionExists
		}
		log.Err(err).Str("func", "*connectionRepository.Update").Str("id", c.ID).Msg("error updating connection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return expectAffected(res)
}

func (r *connectionRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteConnectionQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*connectionRepository.Delete").Str("id", id).Msg("error deleting connection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return expectAffected(res)
}

func (r *connectionRepository) Count(ctx context.Context) (int, error) {
	query, args, err := buildCountConnectionsQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*connectionRepository.Count").Msg("error counting connections")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConnection(row rowScanner) (models.Connection, error) {
	var c models.Connection
	var client string
	err := row.Scan(&c.ID, &client, &c.Name, &c.RemoteID, &c.CreatedAt, &c.UpdatedAt)
	c.Client = models.RemoteClient(client)
	return c, err
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrConnectionNotFound
	}
	return nil
}
