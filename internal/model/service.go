// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Service types offered by the business. Contact and Review records
// must reference one of these values.
const (
	ServiceWedding     = "wedding"
	ServiceCorporate   = "corporate"
	ServiceBirthday    = "birthday"
	ServiceGraduation  = "graduation"
	ServiceAnniversary = "anniversary"
	ServiceOther       = "other"
)

// Services lists the valid service values in display order.
var Services = []string{
	ServiceWedding,
	ServiceCorporate,
	ServiceBirthday,
	ServiceGraduation,
	ServiceAnniversary,
	ServiceOther,
}

// IsValidService reports whether s is one of the fixed service values.
func IsValidService(s string) bool {
	for _, v := range Services {
		if s == v {
			return true
		}
	}
	return false
}
