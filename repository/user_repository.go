package repository

import (
	"time"

	"foodcourt/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) UpdatePassword(id uint, hashed string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("password", hashed).Error
}

func (r *UserRepository) List() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("id DESC").Find(&users).Error
	return users, err
}

// ---------------- Password resets ----------------

func (r *UserRepository) CreateReset(reset *entity.PasswordReset) error {
	return r.DB.Create(reset).Error
}

func (r *UserRepository) FindResetByToken(token string) (*entity.PasswordReset, error) {
	var reset entity.PasswordReset
	if err := r.DB.Where("token = ?", token).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *UserRepository) MarkResetUsed(id uint) error {
	return r.DB.Model(&entity.PasswordReset{}).Where("id = ?", id).
		Updates(map[string]any{"used": true, "updated_at": time.Now()}).Error
}
