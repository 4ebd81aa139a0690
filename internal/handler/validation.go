// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/rherren/eventsite/internal/model"
)

// formSanitizer strips all HTML from free-text form fields. Visitor
// submissions are rendered back into pages, so nothing richer than
// plain text is allowed through.
var formSanitizer = bluemonday.StrictPolicy()

// sanitizeText strips HTML and trims whitespace from a form value.
func sanitizeText(s string) string {
	return strings.TrimSpace(formSanitizer.Sanitize(s))
}

// contactInput holds a contact form submission after sanitization.
type contactInput struct {
	Name      string
	Email     string
	Phone     string
	Service   string
	EventDate string
	Message   string
}

// parseContactInput extracts and sanitizes contact form fields.
func parseContactInput(formValue func(string) string) contactInput {
	return contactInput{
		Name:      sanitizeText(formValue("name")),
		Email:     sanitizeText(formValue("email")),
		Phone:     sanitizeText(formValue("phone")),
		Service:   sanitizeText(formValue("service")),
		EventDate: sanitizeText(formValue("event_date")),
		Message:   sanitizeText(formValue("message")),
	}
}

// validate returns per-field error messages, empty when the input is
// acceptable.
func (in contactInput) validate() map[string]string {
	errs := make(map[string]string)

	if in.Name == "" {
		errs["name"] = "Name is required"
	} else if len(in.Name) > 100 {
		errs["name"] = "Name must be 100 characters or less"
	}

	if in.Email == "" {
		errs["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs["email"] = "Invalid email format"
	}

	if in.Service == "" {
		errs["service"] = "Please choose a service"
	} else if !model.IsValidService(in.Service) {
		errs["service"] = "Please choose a service from the list"
	}

	switch n := len(in.Message); {
	case n == 0:
		errs["message"] = "Message is required"
	case n < model.ContactMessageMinLen:
		errs["message"] = "Message must be at least " +
			strconv.Itoa(model.ContactMessageMinLen) + " characters"
	case n > model.ContactMessageMaxLen:
		errs["message"] = "Message must be " +
			strconv.Itoa(model.ContactMessageMaxLen) + " characters or less"
	}

	return errs
}

// reviewInput holds a review form submission after sanitization.
type reviewInput struct {
	Name      string
	Service   string
	RatingRaw string
	Rating    int
	Comment   string
}

// parseReviewInput extracts and sanitizes review form fields.
func parseReviewInput(formValue func(string) string) reviewInput {
	in := reviewInput{
		Name:      sanitizeText(formValue("name")),
		Service:   sanitizeText(formValue("service")),
		RatingRaw: strings.TrimSpace(formValue("rating")),
		Comment:   sanitizeText(formValue("comment")),
	}
	in.Rating, _ = strconv.Atoi(in.RatingRaw)
	return in
}

func (in reviewInput) validate() map[string]string {
	errs := make(map[string]string)

	if in.Name == "" {
		errs["name"] = "Name is required"
	} else if len(in.Name) > 100 {
		errs["name"] = "Name must be 100 characters or less"
	}

	if in.Service == "" {
		errs["service"] = "Please choose a service"
	} else if !model.IsValidService(in.Service) {
		errs["service"] = "Please choose a service from the list"
	}

	if in.RatingRaw == "" {
		errs["rating"] = "Rating is required"
	} else if in.Rating < model.ReviewRatingMin || in.Rating > model.ReviewRatingMax {
		errs["rating"] = "Rating must be between 1 and 5"
	}

	switch n := len(in.Comment); {
	case n == 0:
		errs["comment"] = "Comment is required"
	case n < model.ReviewCommentMinLen:
		errs["comment"] = "Comment must be at least " +
			strconv.Itoa(model.ReviewCommentMinLen) + " characters"
	case n > model.ReviewCommentMaxLen:
		errs["comment"] = "Comment must be " +
			strconv.Itoa(model.ReviewCommentMaxLen) + " characters or less"
	}

	return errs
}
