package wizard

import (
	"context"
	"fmt"
	"slices"

	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/pkg/apperror"
)

var (
	personalFields = []profile.Field{
		profile.FieldFullName, profile.FieldTitle, profile.FieldEmail, profile.FieldPhone,
		profile.FieldLocation, profile.FieldWebsite, profile.FieldGithub, profile.FieldSummary,
	}
	skillsFields = []profile.Field{profile.FieldSkills, profile.FieldLanguages, profile.FieldInterests}
)

func (c *Controller) SetPersonal(ctx context.Context, f profile.Field, value string) error {
	if !slices.Contains(personalFields, f) {
		return apperror.NewInvalidInput(fmt.Sprintf("%q is not a personal field", f), profile.ErrUnknownField)
	}
	return c.SetField(ctx, f, value)
}

func (c *Controller) SetSkills(ctx context.Context, f profile.Field, value string) error {
	if !slices.Contains(skillsFields, f) {
		return apperror.NewInvalidInput(fmt.Sprintf("%q is not a skills field", f), profile.ErrUnknownField)
	}
	return c.SetField(ctx, f, value)
}

// SetField edits any scalar field. The summary is stored as typed; its
// budget is only reported.
func (c *Controller) SetField(ctx context.Context, f profile.Field, value string) error {
	err := c.apply(ctx, func(p profile.Profile) (profile.Profile, error) {
		return profile.UpdateField(p, f, value)
	})
	if err != nil {
		return apperror.NewInvalidInput("profile field update failed", err)
	}
	return nil
}

// Add appends an empty entry to the collection and returns its new id.
func (c *Controller) Add(ctx context.Context, col profile.Collection) (string, error) {
	var id string
	err := c.apply(ctx, func(p profile.Profile) (profile.Profile, error) {
		id = c.ids.NewID()
		return profile.AddEntry(p, col, id)
	})
	if err != nil {
		return "", apperror.NewInvalidInput("could not add entry", err)
	}
	return id, nil
}

func (c *Controller) AddEducation(ctx context.Context) (string, error) {
	return c.Add(ctx, profile.CollectionEducation)
}

func (c *Controller) AddExperience(ctx context.Context) (string, error) {
	return c.Add(ctx, profile.CollectionExperience)
}

func (c *Controller) AddCertification(ctx context.Context) (string, error) {
	return c.Add(ctx, profile.CollectionCertifications)
}

// Update edits one field of one entry. An unknown id changes nothing.
func (c *Controller) Update(ctx context.Context, col profile.Collection, id string, f profile.EntryField, value string) error {
	err := c.apply(ctx, func(p profile.Profile) (profile.Profile, error) {
		return profile.UpdateEntry(p, col, id, f, value)
	})
	if err != nil {
		return apperror.NewInvalidInput("could not update entry", err)
	}
	return nil
}

func (c *Controller) UpdateEducation(ctx context.Context, id string, f profile.EntryField, value string) error {
	return c.Update(ctx, profile.CollectionEducation, id, f, value)
}

func (c *Controller) UpdateExperience(ctx context.Context, id string, f profile.EntryField, value string) error {
	return c.Update(ctx, profile.CollectionExperience, id, f, value)
}

func (c *Controller) UpdateCertification(ctx context.Context, id string, f profile.EntryField, value string) error {
	return c.Update(ctx, profile.CollectionCertifications, id, f, value)
}

// Remove deletes immediately. There is no undo.
func (c *Controller) Remove(ctx context.Context, col profile.Collection, id string) error {
	err := c.apply(ctx, func(p profile.Profile) (profile.Profile, error) {
		return profile.RemoveEntry(p, col, id)
	})
	if err != nil {
		return apperror.NewInvalidInput("could not remove entry", err)
	}
	return nil
}
