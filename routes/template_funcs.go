/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/url"
	"strings"

	"github.com/humaidq/vitalboard/patient"
)

var allowedImageDataPrefixes = []string{
	"data:image/png;base64,",
	"data:image/jpeg;base64,",
	"data:image/jpg;base64,",
	"data:image/gif;base64,",
	"data:image/webp;base64,",
}

// FuncMap returns the template helpers used by the dashboard templates.
func FuncMap() htmltemplate.FuncMap {
	return htmltemplate.FuncMap{
		"safeImageURL": safeImageURL,
		"trendClass":   trendClass,
	}
}

// safeImageURL only lets http(s) URLs and raster data URIs through to an
// img src. Anything else renders as an empty attribute.
func safeImageURL(raw string) htmltemplate.URL {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}

	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "data:") {
		for _, prefix := range allowedImageDataPrefixes {
			if strings.HasPrefix(lower, prefix) {
				return htmltemplate.URL(value)
			}
		}
		return ""
	}

	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}

	return htmltemplate.URL(u.String())
}

func trendClass(t patient.Trend) string {
	return "trend-" + t.String()
}
