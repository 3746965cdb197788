// Package web embeds the page template and static assets, and
// exposes the template renderer consumed by the HTTP server.
package web

import (
	_ "embed"
	"html/template"

	"github.com/enviark/weather/models"
)

//go:embed static/index.html
var indexHTML string

// Styles is the embedded page stylesheet.
//
//go:embed static/style.css
var Styles []byte

// FeatherJS is the embedded icon script.
//
//go:embed static/feather.min.js
var FeatherJS []byte

//go:embed static/img/spring.jpg
var springImage []byte

//go:embed static/img/summer.jpg
var summerImage []byte

//go:embed static/img/autumn.jpg
var autumnImage []byte

//go:embed static/img/winter.jpg
var winterImage []byte

// Template parses the embedded page template. The template shape is
// fixed at build time; a parse failure is a programming error caught
// by the package tests.
func Template() (*template.Template, error) {
	return template.New("index.html").Parse(indexHTML)
}

// SeasonImage returns the embedded background image for a season.
func SeasonImage(season models.Season) []byte {
	switch season {
	case models.Spring:
		return springImage
	case models.Summer:
		return summerImage
	case models.Autumn:
		return autumnImage
	default:
		return winterImage
	}
}
