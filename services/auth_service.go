package services

import (
	"context"
	"errors"
	"fmt"
	"gin-fooddelivery/apperrors"
	"gin-fooddelivery/constants"
	"gin-fooddelivery/models"
	"gin-fooddelivery/repositories"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type AuthResult struct {
	Token string
	Role  models.Role
}

type IAuthService interface {
	Register(ctx context.Context, name string, email string, password string) (*AuthResult, error)
	Login(ctx context.Context, email string, password string) (*AuthResult, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateAdmin(ctx context.Context, name string, email string, password string) (bool, error)
}

type AuthService struct {
	repository repositories.IUserRepository
	tokens     ITokenService
	validate   *validator.Validate
}

func NewAuthService(repository repositories.IUserRepository, tokens ITokenService) IAuthService {
	return &AuthService{
		repository: repository,
		tokens:     tokens,
		validate:   validator.New(),
	}
}

// bcryptは72バイトまでしか扱えないため、それ以降は切り捨てる。
const bcryptMaxBytes = 72

func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxBytes {
		b = b[:bcryptMaxBytes]
	}
	return b
}

func hashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register はメールの重複チェック→形式チェック→パスワード長チェックの順で検証する。
// 重複チェックはトランザクションではないため、同時登録の競合は防げない。
func (s *AuthService) Register(ctx context.Context, name string, email string, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	if _, err := s.repository.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict(constants.ErrUserExists)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if err := s.validateCredentials(email, password); err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}
	if err := s.repository.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	return s.issue(&user)
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (*AuthResult, error) {
	foundUser, err := s.repository.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized(constants.ErrUserNotExist)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), bcryptInput(password)); err != nil {
		return nil, apperrors.Unauthorized(constants.ErrInvalidCreds)
	}

	return s.issue(foundUser)
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.repository.FindByID(ctx, id)
}

// CreateAdmin は既存ユーザーを管理者に昇格させるか、新しい管理者を作成する。
// 新規作成した場合は true を返す。
func (s *AuthService) CreateAdmin(ctx context.Context, name string, email string, password string) (bool, error) {
	email = NormalizeEmail(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return false, apperrors.Validation(constants.ErrInvalidEmail)
	}
	if password != "" && utf8.RuneCountInString(password) < constants.MinPasswordLength {
		return false, apperrors.Validation(constants.ErrWeakPassword + " (min 8 characters)")
	}

	user, err := s.repository.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return false, err
	}

	if user != nil {
		if password != "" {
			hashed, err := hashPassword(password)
			if err != nil {
				return false, fmt.Errorf("hash password: %w", err)
			}
			user.Password = string(hashed)
		}
		user.Role = models.RoleAdmin
		return false, s.repository.Save(ctx, user)
	}

	if password == "" || strings.TrimSpace(name) == "" {
		return false, apperrors.Validation(constants.ErrAdminFieldsEmpty)
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	admin := models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := s.repository.CreateUser(ctx, &admin); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) validateCredentials(email string, password string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return apperrors.Validation(constants.ErrInvalidEmail)
	}
	if utf8.RuneCountInString(password) < constants.MinPasswordLength {
		return apperrors.Validation(constants.ErrWeakPassword)
	}
	return nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Role: user.Role}, nil
}
