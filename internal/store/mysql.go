package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/B7A9F/exercices-api/internal/models"
)

// MySQLUserStore implements UserStore over database/sql.
type MySQLUserStore struct {
	db *sql.DB
}

func NewMySQLUserStore(db *sql.DB) *MySQLUserStore {
	return &MySQLUserStore{db: db}
}

func (s *MySQLUserStore) CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES (?, ?, ?)
	`, username, email, passwordHash)
	if err != nil {
		return models.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	err = s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE id = ?
	`, id).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MySQLUserStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users WHERE email = ?
	`, email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// MySQLExerciceStore implements ExerciceStore over database/sql.
type MySQLExerciceStore struct {
	db *sql.DB
}

func NewMySQLExerciceStore(db *sql.DB) *MySQLExerciceStore {
	return &MySQLExerciceStore{db: db}
}

const exerciceColumns = "id, name, type, muscle, equipment, img, gif, video, description, instructions, owner, created_at, updated_at"

func scanExercice(row interface{ Scan(...any) error }) (models.Exercice, error) {
	var ex models.Exercice
	err := row.Scan(&ex.ID, &ex.Name, &ex.Type, &ex.Muscle, &ex.Equipment, &ex.Img,
		&ex.Gif, &ex.Video, &ex.Description, &ex.Instructions, &ex.Owner,
		&ex.CreatedAt, &ex.UpdatedAt)
	return ex, err
}

func (s *MySQLExerciceStore) ListByOwners(ctx context.Context, owners []string) ([]models.Exercice, error) {
	if len(owners) == 0 {
		return []models.Exercice{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(owners)), ",")
	args := make([]any, len(owners))
	for i, o := range owners {
		args[i] = o
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+exerciceColumns+`
		FROM exercices WHERE owner IN (`+placeholders+`)
		ORDER BY created_at
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercices := []models.Exercice{}
	for rows.Next() {
		ex, err := scanExercice(rows)
		if err != nil {
			return nil, err
		}
		exercices = append(exercices, ex)
	}
	return exercices, rows.Err()
}

func (s *MySQLExerciceStore) ExistsTriple(ctx context.Context, owner, name, exerciceType, muscle string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM exercices
		WHERE owner = ? AND name = ? AND type = ? AND muscle = ?
	`, owner, name, exerciceType, muscle).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *MySQLExerciceStore) Create(ctx context.Context, ex models.Exercice) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exercices (id, name, type, muscle, equipment, img, gif, video, description, instructions, owner, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ex.ID, ex.Name, ex.Type, ex.Muscle, ex.Equipment, ex.Img, ex.Gif, ex.Video,
		ex.Description, ex.Instructions, ex.Owner, ex.CreatedAt, ex.UpdatedAt)
	return err
}

func (s *MySQLExerciceStore) GetByID(ctx context.Context, id string) (models.Exercice, error) {
	ex, err := scanExercice(s.db.QueryRowContext(ctx, `
		SELECT `+exerciceColumns+`
		FROM exercices WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Exercice{}, ErrNotFound
	}
	if err != nil {
		return models.Exercice{}, err
	}
	return ex, nil
}

// Update persists every field of ex. RowsAffected is 0 for a no-op
// update, so it cannot distinguish a missing row; callers look the
// record up first.
func (s *MySQLExerciceStore) Update(ctx context.Context, ex models.Exercice) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE exercices
		SET name = ?, type = ?, muscle = ?, equipment = ?, img = ?, gif = ?,
		    video = ?, description = ?, instructions = ?, owner = ?, updated_at = ?
		WHERE id = ?
	`, ex.Name, ex.Type, ex.Muscle, ex.Equipment, ex.Img, ex.Gif, ex.Video,
		ex.Description, ex.Instructions, ex.Owner, ex.UpdatedAt, ex.ID)
	return err
}

func (s *MySQLExerciceStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM exercices WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
