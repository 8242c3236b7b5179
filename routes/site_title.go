/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"os"
	"strings"

	"github.com/flamego/template"
)

const (
	defaultSiteTitle = "Vitalboard"
	siteTitleEnvVar  = "SITE_TITLE"
)

func siteTitle() string {
	title := strings.TrimSpace(os.Getenv(siteTitleEnvVar))
	if title == "" {
		return defaultSiteTitle
	}
	return title
}

func setSiteTitle(data template.Data) {
	data["SiteTitle"] = siteTitle()
	data["PageTitle"] = siteTitle()
}

func setPatientPageTitle(data template.Data, name string) {
	data["SiteTitle"] = siteTitle()
	data["PageTitle"] = name + " · " + siteTitle()
}
