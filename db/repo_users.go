package db

import (
	"context"
	"errors"

	"car_dealership_api/models"

	"gorm.io/gorm"
)

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", u.Username).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrUsernameTaken
	}
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *Repo) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *Repo) ListManagers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).
		Where("role = ?", models.RoleManager).
		Order("full_name").
		Find(&users).Error
	return users, err
}

type UpdateUserInput struct {
	Username     string
	Email        string
	FullName     string
	Role         string
	PasswordHash string // empty keeps the current credential
}

func (r *Repo) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	if _, err := r.FindUserByID(ctx, id); err != nil {
		return nil, err
	}
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND id <> ?", in.Username, id).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrUsernameTaken
	}
	updates := map[string]interface{}{
		"username":  in.Username,
		"email":     in.Email,
		"full_name": in.FullName,
		"role":      in.Role,
	}
	if in.PasswordHash != "" {
		updates["password_hash"] = in.PasswordHash
	}
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindUserByID(ctx, id)
}

func (r *Repo) DeleteUserByID(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchUserSeen records activity; database time avoids clock skew between
// replicas (throttled by app.TouchLastSeen).
func (r *Repo) TouchUserSeen(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_seen_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}
