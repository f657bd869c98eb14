package store

import (
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-api/models"
)

// psql renders queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var userColumns = []string{"id", "email", "password", "created_at", "updated_at"}

func returningUserColumns() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

// buildCreateUserQuery inserts a new account row. Timestamps are assigned by
// the database defaults and come back through the RETURNING clause.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("id", "email", "password").
		Values(user.UserID, user.Email, user.PasswordHash).
		Suffix(returningUserColumns()).
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(userID string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
}

func buildUpdatePasswordQuery(userID string, passwordHash string, updatedAt time.Time) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("password", passwordHash).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": userID}).
		Suffix(returningUserColumns()).
		ToSql()
}
