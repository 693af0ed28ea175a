package auth

import (
	"gorm.io/gorm"

	entity "biolink.GO/model/entity"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// FindActiveToken returns a non-revoked bearer token by its token string.
func (r *AuthRepository) FindActiveToken(token string) (*entity.ApiToken, error) {
	var t entity.ApiToken
	err := r.db.Where("token = ? AND revoked = 0", token).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindRoles returns all roles assigned to a user.
func (r *AuthRepository) FindRoles(userID string) ([]string, error) {
	var rows []entity.UserRole
	if err := r.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	roles := make([]string, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, row.Role)
	}
	return roles, nil
}

// UserHasRole reports whether the user holds the given role.
func (r *AuthRepository) UserHasRole(userID, role string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.UserRole{}).Where("user_id = ? AND role = ?", userID, role).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
