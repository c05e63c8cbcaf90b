package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrProductNotFound = errors.New("product not found")
var ErrMessageNotFound = errors.New("message not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrDuplicateFavorite = errors.New("product already in favorites")
var ErrValidation = errors.New("validation failed")
