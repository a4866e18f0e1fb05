package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/pricesnap/pricesnap-api/internal/models"
)

// ProfileRepository handles data access for user profiles.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByEmail returns a profile by email.
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.Get(&p, `
		SELECT id, email, password_hash, full_name, avatar_url, last_sign_in_at, created_at, updated_at
		FROM profiles
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID returns a profile by id.
func (r *ProfileRepository) GetByID(id string) (*models.Profile, error) {
	var p models.Profile
	err := r.db.Get(&p, `
		SELECT id, email, password_hash, full_name, avatar_url, last_sign_in_at, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new profile.
func (r *ProfileRepository) Create(p *models.Profile) error {
	const q = `
		INSERT INTO profiles (id, email, password_hash, full_name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`
	return r.db.QueryRowx(q, p.ID, p.Email, p.PasswordHash, p.FullName, p.AvatarURL).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Upsert inserts or updates profile display fields by id, mirroring the
// row-level upsert the mobile client performed on every sign-in.
func (r *ProfileRepository) Upsert(p *models.Profile) error {
	const q = `
		INSERT INTO profiles (id, email, password_hash, full_name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = COALESCE(EXCLUDED.full_name, profiles.full_name),
			avatar_url = COALESCE(EXCLUDED.avatar_url, profiles.avatar_url),
			updated_at = NOW()`
	_, err := r.db.Exec(q, p.ID, p.Email, p.PasswordHash, p.FullName, p.AvatarURL)
	return err
}

// TouchSignIn records a successful sign-in.
func (r *ProfileRepository) TouchSignIn(id string) error {
	_, err := r.db.Exec(`UPDATE profiles SET last_sign_in_at = NOW(), updated_at = NOW() WHERE id = $1`, id)
	return err
}

// UpdatePasswordHash replaces the stored password hash.
func (r *ProfileRepository) UpdatePasswordHash(id, hash string) error {
	res, err := r.db.Exec(`UPDATE profiles SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
