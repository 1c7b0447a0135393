package services

import (
	"fmt"
	"strings"

	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func GetAccountWithName(username string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("username = ?", username).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by username: %v", err)
	}
	return account, nil
}

func NewAccount(username, email, password string) (models.Account, error) {
	username = strings.ToLower(username)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("unable to hash password: %v", err)
	}

	account := models.Account{
		Username: username,
		Nick:     username,
		Email:    email,
		Password: string(hash),
	}

	if err := database.C.Save(&account).Error; err != nil {
		return account, fmt.Errorf("unable to save account: %v", err)
	}

	return account, nil
}

func AuthenticateAccount(username, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.
		Where("username = ? OR email = ?", strings.ToLower(username), username).
		First(&account).Error; err != nil {
		return account, fmt.Errorf("account was not found: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return account, fmt.Errorf("invalid password")
	}

	return account, nil
}
