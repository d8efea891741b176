package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectUser = `SELECT USERS.id, USERS.first_name, USERS.last_name, USERS.age, USERS.email, USERS.salary,
					     USERS.is_blocked, USERS.accountant_id,
					     COALESCE(CREDENTIALS.username, ''), COALESCE(CREDENTIALS.password, '')
				  FROM USERS
				  LEFT JOIN CREDENTIALS ON CREDENTIALS.user_id = USERS.id`

	GetUser           = selectUser + ` WHERE USERS.id=$1;`
	GetUserByUsername = selectUser + ` WHERE CREDENTIALS.username=$1;`
	GetUserByEmail    = selectUser + ` WHERE USERS.email=$1;`
	GetUsers          = selectUser + ` ORDER BY USERS.id;`

	InsertUser = `INSERT INTO USERS (first_name, last_name, age, email, salary, is_blocked, accountant_id)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						RETURNING id;`
	InsertCredentials = `INSERT INTO CREDENTIALS (user_id, username, password)
						VALUES ($1, $2, $3);`
	UpdateUser = `UPDATE USERS
				  SET first_name = $1,
				      last_name = $2,
				      age = $3,
				      email = $4,
				      salary = $5,
				      is_blocked = $6,
				      accountant_id = $7
				  WHERE id = $8;`
)

type UserDatabase struct {
	DB *Database
}

// Создание хранилища
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Age,
		&user.Email,
		&user.Salary,
		&user.IsBlocked,
		&user.AccountantID,
		&user.Username,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserDatabase) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	user, err := scanUser(s.DB.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserDatabase) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, GetUser, id)
}

func (s *UserDatabase) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, GetUserByUsername, username)
}

func (s *UserDatabase) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, GetUserByEmail, email)
}

func (s *UserDatabase) GetUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.DB.Pool.Query(ctx, GetUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return users, nil
}

// AddUser - добавление пользователя вместе с учётными данными в одной транзакции
func (s *UserDatabase) AddUser(ctx context.Context, user models.User, passwordHash string) (int64, error) {
	tx, err := s.DB.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, InsertUser,
		user.FirstName,
		user.LastName,
		user.Age,
		user.Email,
		user.Salary,
		user.IsBlocked,
		user.AccountantID,
	).Scan(&id)
	if err != nil {
		return 0, wrapInsertError("user", err)
	}

	if _, err = tx.Exec(ctx, InsertCredentials, id, user.Username, passwordHash); err != nil {
		return 0, wrapInsertError("credentials", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (s *UserDatabase) SaveUser(ctx context.Context, user models.User) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateUser,
		user.FirstName,
		user.LastName,
		user.Age,
		user.Email,
		user.Salary,
		user.IsBlocked,
		user.AccountantID,
		user.ID,
	)
	if err != nil {
		return wrapInsertError("user", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Проверяем именно нарушение уникальности (код 23505)
func wrapInsertError(entity string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to save %s: %w", entity, err)
}
