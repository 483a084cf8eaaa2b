package user

import (
	"context"
	"errors"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/models"
)

const bcryptCost = 10

var (
	ErrMissingRequiredFields = appErrors.NewValidationError("Nome, email e senha são obrigatórios")
	ErrMissingPasswords      = appErrors.NewValidationError("Senha atual e nova senha são obrigatórias")
	ErrInvalidEmail          = appErrors.NewValidationError("Email inválido")
	ErrPasswordTooLong       = appErrors.NewValidationError("Senha deve ter no máximo 72 bytes")
	ErrInvalidCurrentPass    = appErrors.NewAuthError("Senha atual incorreta")
)

// UpdateInput carries a partial update; nil fields keep their stored value.
type UpdateInput struct {
	Name                  *string `json:"nome"`
	Email                 *string `json:"email"`
	UserType              *string `json:"tipo_usuario"`
	AllowRetroactiveEntry *bool   `json:"permite_lancamento_retroativo"`
}

type Service interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.UserDetail, error)
	Create(ctx context.Context, name, email, password, userType string) (*models.User, error)
	Update(ctx context.Context, id string, input UpdateInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
}

type service struct {
	repo Repository
	log  *zap.Logger
}

func NewUserService(repo Repository, log *zap.Logger) Service {
	return &service{
		repo: repo,
		log:  log,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(currPassword))
	return err == nil
}

// validateEmailAddress only checks the format; host lookups would make every
// create depend on DNS.
func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// validID rejects ids that cannot name a row, so they never reach the uuid column.
func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrUserNotFound
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*models.UserDetail, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	user, err := s.repo.FindWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.NewUserDetail(user), nil
}

func (s *service) Create(ctx context.Context, name, email, password, userType string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	userType = strings.TrimSpace(userType)
	if userType == "" {
		userType = models.DefaultUserType
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, s.hashError("Erro ao criar usuário", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: passwordHash,
		UserType: userType,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user created", zap.String("user_id", user.ID))
	return user, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateInput) (*models.User, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := trimmed(input.Name); v != "" {
		user.Name = v
	}
	if v := trimmed(input.Email); v != "" {
		if err := validateEmailAddress(v); err != nil {
			return nil, err
		}
		user.Email = v
	}
	if v := trimmed(input.UserType); v != "" {
		user.UserType = v
	}
	if input.AllowRetroactiveEntry != nil {
		user.AllowRetroactiveEntry = *input.AllowRetroactiveEntry
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("user_id", id))
	return nil
}

func (s *service) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrMissingPasswords
	}
	if err := validID(id); err != nil {
		return err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !doPasswordsMatch(user.Password, currentPassword) {
		return ErrInvalidCurrentPass
	}

	newPasswordHash, err := hashPassword(newPassword)
	if err != nil {
		return s.hashError("Erro ao alterar senha", err)
	}
	return s.repo.UpdatePassword(ctx, id, newPasswordHash)
}

func (s *service) hashError(msg string, err error) error {
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return ErrPasswordTooLong
	}
	s.log.Error("error during hashing the password", zap.Error(err))
	return appErrors.NewPersistenceError(msg, err)
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
