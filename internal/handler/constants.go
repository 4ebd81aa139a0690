// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers for the public site, the
// admin dashboard and the JSON API.
package handler

// Route paths used across handlers and redirects.
const (
	RouteRoot     = "/"
	RouteAbout    = "/about"
	RouteGallery  = "/gallery"
	RouteServices = "/services"
	RouteContact  = "/contact"
	RouteReviews  = "/reviews"
	RouteLogin    = "/login"
	RouteLogout   = "/logout"
	RouteAdmin    = "/admin"
)
