// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-accounts/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// UserValidator checks that account fields are present. Values are taken
// as given: nothing is trimmed or normalised.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks the named fields of a models.User, or all of them when
// no field is named. Every missing field is reported in the joined error.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldUsername:
			if user.Username == "" {
				errs = append(errs, ErrEmptyUsername)
			}
		case FieldEmail:
			if user.Email == "" {
				errs = append(errs, ErrEmptyEmail)
			}
		case FieldPassword:
			if user.Password == "" {
				errs = append(errs, ErrEmptyPassword)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return errors.Join(errs...)
}
