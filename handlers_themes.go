package main

import (
	"github.com/pocketbase/pocketbase/core"
	"github.com/undanganku/undanganku/utils"
)

// handleListThemes returns every theme bundle
func handleListThemes() func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		return utils.DataResponse(re, ListThemes())
	}
}

// handleGetTheme returns one theme bundle by exact id
func handleGetTheme() func(*core.RequestEvent) error {
	return func(re *core.RequestEvent) error {
		theme, ok := LookupTheme(re.Request.PathValue("id"))
		if !ok {
			return utils.NotFoundResponse(re, "Theme not found")
		}
		return utils.DataResponse(re, theme)
	}
}
