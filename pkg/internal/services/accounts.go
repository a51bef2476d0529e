package services

import (
	"fmt"

	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func GetAccountWithName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func NewAccount(name, nick, password string) (models.Account, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("unable to hash password: %v", err)
	}

	account := models.Account{
		Name:     name,
		Nick:     nick,
		Password: string(hashed),
	}

	err = database.C.Create(&account).Error
	return account, err
}

func AuthenticateAccount(name, password string) (models.Account, error) {
	account, err := GetAccountWithName(name)
	if err != nil {
		return account, fmt.Errorf("account was not found: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return account, fmt.Errorf("invalid credentials")
	}

	return account, nil
}
