package repositories

import (
	"database/sql"
	"strings"

	"BE-Hotel-Booking/app/entities"
)

type UserRepository interface {
	Create(user entities.User, hashedPassword string) error
	GetCredentials(usernameOrEmail string) (string, string, error) // username, password hash
	GetByEmail(email string) (entities.GetUser, error)
	GetByUsername(username string) (entities.GetUser, error)
	GetByID(id int) (entities.GetUser, error)
	Update(id int, user entities.UpdateUser) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user entities.User, hashedPassword string) error {
	query := `INSERT INTO users (username, email, password_hash, name, role) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(query, user.Username, user.Email, hashedPassword, user.Name, user.Role)
	return err
}

func (r *userRepository) GetCredentials(usernameOrEmail string) (string, string, error) {
	var query string
	if isEmail(usernameOrEmail) {
		query = `SELECT username, password_hash FROM users WHERE email=$1`
	} else {
		query = `SELECT username, password_hash FROM users WHERE username=$1`
	}
	var username, passwordHash string
	err := r.db.QueryRow(query, usernameOrEmail).Scan(&username, &passwordHash)
	return username, passwordHash, err
}

func (r *userRepository) GetByEmail(email string) (entities.GetUser, error) {
	var user entities.GetUser
	err := r.db.QueryRow(`SELECT id, username, email, name, role FROM users WHERE email=$1`, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.Name, &user.Role)
	return user, err
}

func (r *userRepository) GetByUsername(username string) (entities.GetUser, error) {
	var user entities.GetUser
	err := r.db.QueryRow(`SELECT id, username, email, name, role FROM users WHERE username=$1`, username).
		Scan(&user.ID, &user.Username, &user.Email, &user.Name, &user.Role)
	return user, err
}

func (r *userRepository) GetByID(id int) (entities.GetUser, error) {
	var user entities.GetUser
	err := r.db.QueryRow(`SELECT id, username, email, name, role FROM users WHERE id=$1`, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.Name, &user.Role)
	return user, err
}

func (r *userRepository) Update(id int, user entities.UpdateUser) error {
	query := `UPDATE users SET username=$1, email=$2, name=$3 WHERE id=$4`
	_, err := r.db.Exec(query, user.Username, user.Email, user.Name, id)
	return err
}

func isEmail(input string) bool {
	return strings.Contains(input, "@")
}
