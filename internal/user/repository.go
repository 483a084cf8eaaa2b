package user

import (
	"context"

	"gorm.io/gorm"

	database "github.com/sebuszqo/FinanceTracker/internal/db"
	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/models"
)

var (
	ErrUserNotFound       = appErrors.NewNotFoundError("Usuário não encontrado")
	ErrEmailAlreadyExists = appErrors.NewConflictError("Email já cadastrado")
	ErrEmailInUse         = appErrors.NewConflictError("Email já está em uso")
)

// publicColumns excludes the password hash.
var publicColumns = []string{"id", "nome", "email", "tipo_usuario", "permite_lancamento_retroativo", "criado_em"}

type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindWithRelations(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.db.WithContext(ctx).
		Select(publicColumns).
		Order("criado_em DESC").
		Find(&users).Error
	if err != nil {
		return nil, appErrors.NewPersistenceError("Erro ao buscar usuários", err)
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, appErrors.NewPersistenceError("Erro ao buscar usuário", err)
	}
	return &user, nil
}

func (r *userRepository) FindWithRelations(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Select(publicColumns).
		Preload("Accounts", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "nome", "tipo", "saldo_inicial", "usuario_id").Order("nome ASC")
		}).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "nome", "tipo", "usuario_id").Order("nome ASC")
		}).
		First(&user, "id = ?", id).Error
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, appErrors.NewPersistenceError("Erro ao buscar usuário", err)
	}
	return &user, nil
}

// Create relies on the unique index on email; a concurrent insert with the
// same address loses here and is reported as a conflict.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return appErrors.NewPersistenceError("Erro ao criar usuário", err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).
		Model(user).
		Select("nome", "email", "tipo_usuario", "permite_lancamento_retroativo").
		Updates(user)
	if result.Error != nil {
		if database.IsUniqueViolation(result.Error) {
			return ErrEmailInUse
		}
		return appErrors.NewPersistenceError("Erro ao atualizar usuário", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("senha", passwordHash)
	if result.Error != nil {
		return appErrors.NewPersistenceError("Erro ao alterar senha", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the row; accounts and categories follow through ON DELETE CASCADE.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return appErrors.NewPersistenceError("Erro ao deletar usuário", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
