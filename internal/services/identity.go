package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Mikheil23/FinalProject/internal/config"
	"github.com/Mikheil23/FinalProject/internal/logger"
	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/Mikheil23/FinalProject/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IdentityService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (*models.UserResponse, error)
	RegisterAccountant(ctx context.Context, req models.AccountantRegisterRequest) (*models.AccountantResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, tokenID string) error
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth     *jwtauth.JWTAuth
	TokenTTL    time.Duration
	Users       storage.UsersStorage
	Accountants storage.AccountantsStorage
	// nil - сессии не отслеживаются, токен действует до истечения
	Sessions storage.SessionsStorage
}

const (
	TokenSecterAlgo = "HS256"

	InvalidCredentials = "Invalid username or password."
)

// Создание сервиса
func NewIdentity(cfg config.Config, users storage.UsersStorage, accountants storage.AccountantsStorage, sessions storage.SessionsStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Auth.JWTSecret), nil)
	return &Identity{
		JWTAuth:     tokenAuth,
		TokenTTL:    cfg.Auth.TokenTTL,
		Users:       users,
		Accountants: accountants,
		Sessions:    sessions,
	}
}

// Регистрация нового пользователя вместе с учётными данными
func (i *Identity) RegisterUser(ctx context.Context, req models.RegisterRequest) (*models.UserResponse, error) {
	log := logger.FromContext(ctx)
	if err := validate(req); err != nil {
		return nil, err
	}
	log.Infow("Register user", "username", req.Username)

	if _, err := i.Users.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, Conflict("Email already in use.")
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, err
	}
	if err := i.checkUsernameFree(ctx, req.Username); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("Error generating password hash", "error", err)
		return nil, err
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Email:     req.Email,
		Username:  req.Username,
	}
	if req.Salary != nil {
		user.Salary = *req.Salary
	}
	user.ID, err = i.Users.AddUser(ctx, user, string(hashedPassword))
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, Conflict("Username already in use.")
		}
		log.Errorw("Error registering user", "username", req.Username, "error", err)
		return nil, err
	}

	resp := models.NewUserResponse(user)
	return &resp, nil
}

// Регистрация бухгалтера
func (i *Identity) RegisterAccountant(ctx context.Context, req models.AccountantRegisterRequest) (*models.AccountantResponse, error) {
	log := logger.FromContext(ctx)
	if err := validate(req); err != nil {
		return nil, err
	}
	log.Infow("Register accountant", "username", req.Username)

	if err := i.checkUsernameFree(ctx, req.Username); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("Error generating password hash", "error", err)
		return nil, err
	}

	accountant := models.Accountant{FirstName: req.FirstName, LastName: req.LastName, Username: req.Username}
	accountant.ID, err = i.Accountants.AddAccountant(ctx, accountant, string(hashedPassword))
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, Conflict("Username already in use.")
		}
		log.Errorw("Error registering accountant", "username", req.Username, "error", err)
		return nil, err
	}

	return &models.AccountantResponse{
		AccountantID: accountant.ID,
		FirstName:    accountant.FirstName,
		LastName:     accountant.LastName,
		Username:     accountant.Username,
	}, nil
}

// Аутентификация: сначала учётные данные пользователя, затем бухгалтера
func (i *Identity) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	log := logger.FromContext(ctx)
	if err := validate(req); err != nil {
		return nil, err
	}

	subject, hash, role, err := i.findCredentials(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if role == models.RoleUnknown {
		log.Warnw("Unknown username", "username", req.Username)
		return nil, Unauthorized(InvalidCredentials)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		log.Warnw("Invalid password", "username", req.Username)
		return nil, Unauthorized(InvalidCredentials)
	}

	tokenID := uuid.New().String()
	token, err := i.GenerateJWT(subject, req.Username, role, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	if i.Sessions != nil {
		if err = i.Sessions.AddSession(ctx, tokenID, subject, i.TokenTTL); err != nil {
			return nil, err
		}
	}

	log.Infow("Authenticated", "username", req.Username, "role", role.String())
	return &models.LoginResponse{Token: token}, nil
}

// Logout - отзыв сессии токена
func (i *Identity) Logout(ctx context.Context, tokenID string) error {
	if i.Sessions == nil || tokenID == "" {
		return nil
	}
	return i.Sessions.DeleteSession(ctx, tokenID)
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(subject string, username string, role models.Role, tokenID string) (string, error) {
	claims := map[string]interface{}{
		"sub":      subject,
		"username": username,
		"role":     role.String(),
		"jti":      tokenID,
	}
	jwtauth.SetExpiryIn(claims, i.TokenTTL)
	_, tokenString, err := i.JWTAuth.Encode(claims)
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}

func (i *Identity) checkUsernameFree(ctx context.Context, username string) error {
	if _, err := i.Users.GetUserByUsername(ctx, username); err == nil {
		return Conflict("Username already in use.")
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}
	if _, err := i.Accountants.GetAccountantByUsername(ctx, username); err == nil {
		return Conflict("Username already in use.")
	} else if !errors.Is(err, storage.ErrAccountantNotFound) {
		return err
	}
	return nil
}

func (i *Identity) findCredentials(ctx context.Context, username string) (string, string, models.Role, error) {
	user, err := i.Users.GetUserByUsername(ctx, username)
	if err == nil {
		return strconv.FormatInt(user.ID, 10), user.PasswordHash, models.RoleUser, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return "", "", models.RoleUnknown, err
	}
	accountant, err := i.Accountants.GetAccountantByUsername(ctx, username)
	if err == nil {
		return strconv.FormatInt(accountant.ID, 10), accountant.PasswordHash, models.RoleAccountant, nil
	}
	if !errors.Is(err, storage.ErrAccountantNotFound) {
		return "", "", models.RoleUnknown, err
	}
	return "", "", models.RoleUnknown, nil
}
