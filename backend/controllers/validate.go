package controllers

import "github.com/go-playground/validator/v10"

// validate checks Insert* payloads; any failure collapses to a 400 with
// a generic message, no field-level detail.
var validate = validator.New()
