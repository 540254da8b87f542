package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// FindIdentity resolves the request identity for an account, joining in the
// patient profile id for patient accounts.
func (r *UserRepository) FindIdentity(ctx context.Context, userID uint) (*domain.Identity, error) {
	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{UserID: user.ID, Role: user.Role}
	if user.Role == domain.RolePatient {
		var patient domain.Patient
		err := r.db.WithContext(ctx).Where("user_id = ?", user.ID).First(&patient).Error
		switch {
		case err == nil:
			identity.PatientID = &patient.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// patient account without a profile: identity stands, access
			// predicate denies patient-scoped operations
		default:
			return nil, fmt.Errorf("find patient profile: %w", err)
		}
	}
	return identity, nil
}
