package services

import (
	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/inkwellhq/inkwell/pkg/internal/models"
)

func ListGroup(take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func GetGroup(alias string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{Alias: alias}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(alias, name, description string) (models.Group, error) {
	group := models.Group{
		Alias:       alias,
		Name:        name,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}

func EditGroup(group models.Group, alias, name, description string) (models.Group, error) {
	group.Alias = alias
	group.Name = name
	group.Description = description

	err := database.C.Save(&group).Error

	return group, err
}
