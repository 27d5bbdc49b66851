// Package mapper copies fields between persistence entities and transfer
// objects. Server-owned fields (ids, owner keys, timestamps, soft-delete
// flags) are never taken from incoming DTOs.
package mapper

import "candidate-search-backend/internal/domain"

func UserToDTO(u *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:                u.ID,
		Email:             u.Email,
		Role:              u.Role,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Patronymic:        u.Patronymic,
		DateOfBirth:       u.DateOfBirth,
		PreferredLanguage: u.PreferredLanguage,
		Description:       u.Description,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// ApplyUserEdit copies the allowed mutable fields onto the entity. Nil
// pointers mean the field was not specified and stays untouched.
func ApplyUserEdit(edit domain.UserEdit, u *domain.User) {
	if edit.FirstName != nil {
		u.FirstName = *edit.FirstName
	}
	if edit.LastName != nil {
		u.LastName = *edit.LastName
	}
	if edit.Patronymic != nil {
		u.Patronymic = *edit.Patronymic
	}
	if edit.Description != nil {
		u.Description = *edit.Description
	}
	if edit.DateOfBirth != nil {
		u.DateOfBirth = *edit.DateOfBirth
	}
	if edit.PreferredLanguage != nil {
		u.PreferredLanguage = *edit.PreferredLanguage
	}
}

func ContactToDTO(c *domain.Contact) domain.ContactDTO {
	return domain.ContactDTO{
		ID:          c.ID,
		Type:        c.Type,
		Value:       c.Value,
		Description: c.Description,
		IsPrimary:   c.IsPrimary,
	}
}

func ContactsToDTO(contacts []domain.Contact) []domain.ContactDTO {
	dtos := make([]domain.ContactDTO, 0, len(contacts))
	for i := range contacts {
		dtos = append(dtos, ContactToDTO(&contacts[i]))
	}
	return dtos
}

// ApplyContactDTO copies the client-editable contact fields. The id and the
// owner key stay server-owned.
func ApplyContactDTO(dto domain.ContactDTO, c *domain.Contact) {
	c.Type = dto.Type
	c.Value = dto.Value
	c.Description = dto.Description
	c.IsPrimary = dto.IsPrimary
}

func FileToDTO(f *domain.File) domain.FileDTO {
	return domain.FileDTO{
		ID:          f.ID,
		Name:        f.Name,
		Type:        f.Type,
		StoragePath: f.StoragePath,
		Description: f.Description,
		UploadedAt:  f.UploadedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func FilesToDTO(files []domain.File) []domain.FileDTO {
	dtos := make([]domain.FileDTO, 0, len(files))
	for i := range files {
		dtos = append(dtos, FileToDTO(&files[i]))
	}
	return dtos
}

func NewsToDTO(n *domain.NewsPost) domain.NewsPostDTO {
	return domain.NewsPostDTO{
		ID:        n.ID,
		Author:    n.Author,
		Title:     n.Title,
		Body:      n.Body,
		Level:     n.Level,
		CreatedAt: n.CreatedAt,
	}
}

func NewsPostsToDTO(posts []domain.NewsPost) []domain.NewsPostDTO {
	dtos := make([]domain.NewsPostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, NewsToDTO(&posts[i]))
	}
	return dtos
}

// ApplyNewsDTO copies the mutable news fields. The id and creation timestamp
// are server-owned: CreatedAt anchors the pagination ordering.
func ApplyNewsDTO(dto domain.NewsPostDTO, n *domain.NewsPost) {
	n.Author = dto.Author
	n.Title = dto.Title
	n.Body = dto.Body
	n.Level = dto.Level
}
