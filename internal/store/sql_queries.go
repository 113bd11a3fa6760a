// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/service-launcher/models"
)

const connectionsTable = "connections"

var connectionColumns = []string{"id", "client", "name", "remote_id", "created_at", "updated_at"}

var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildListConnectionsQuery(filter models.ConnectionFilter) (string, []any, error) {
	q := sqlb.Select(connectionColumns...).From(connectionsTable)

	if filter.Client != "" {
		q = q.Where(sq.Eq{"client": string(filter.Client)})
	}
	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + escapeLike(query) + "%"
		q = q.Where(sq.Or{
			sq.Expr("name LIKE ? ESCAPE '\\'", pattern),
			sq.Expr("remote_id LIKE ? ESCAPE '\\'", pattern),
		})
	}

	return q.OrderBy("client", "name COLLATE NOCASE").ToSql()
}

func buildGetConnectionQuery(id string) (string, []any, error) {
	return sqlb.Select(connectionColumns...).
		From(connectionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertConnectionQuery(c models.Connection) (string, []any, error) {
	return sqlb.Insert(connectionsTable).
		Columns(connectionColumns...).
		Values(c.ID, string(c.Client), c.Name, c.RemoteID, c.CreatedAt.UTC(), c.UpdatedAt.UTC()).
		ToSql()
}

func buildUpdateConnectionQuery(c models.Connection, now time.Time) (string, []any, error) {
	return sqlb.Update(connectionsTable).
		Set("client", string(c.Client)).
		Set("name", c.Name).
		Set("remote_id", c.RemoteID).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
}

func buildDeleteConnectionQuery(id string) (string, []any, error) {
	return sqlb.Delete(connectionsTable).Where(sq.Eq{"id": id}).ToSql()
}

func buildCountConnectionsQuery() (string, []any, error) {
	return sqlb.Select("COUNT(*)").From(connectionsTable).ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
