// Package form describes the admin edit forms for catalog entities and
// drives their submission.
package form

import (
	"trackr/backend/internal/repository"
	"trackr/backend/internal/storage"
)

type Kind string

const (
	KindText        Kind = "text"
	KindTextarea    Kind = "textarea"
	KindNumber      Kind = "number"
	KindSelect      Kind = "select"
	KindMultiselect Kind = "multiselect"
	KindImage       Kind = "image"
	KindYear        Kind = "year"
)

// Tables that select fields can load their options from.
const (
	TableGames    = "games"
	TableConsoles = "consoles"
)

// Field describes one form control. ValueFrom is a dotted path into the
// initial record, used instead of Name to read the starting value.
type Field struct {
	Name      string              `json:"name"`
	Label     string              `json:"label"`
	Kind      Kind                `json:"type"`
	Required  bool                `json:"required,omitempty"`
	ValueFrom string              `json:"value_from,omitempty"`
	Table     string              `json:"table,omitempty"`
	Bucket    string              `json:"bucket,omitempty"`
	Options   []repository.Option `json:"options,omitempty"`
}

var GameFields = []Field{
	{Name: "name", Label: "Name", Kind: KindText, Required: true},
	{Name: "description", Label: "Description", Kind: KindTextarea},
	{Name: "pegi", Label: "PEGI", Kind: KindNumber},
	{Name: "image_url", Label: "Image", Kind: KindImage, Bucket: storage.BucketGames},
	{Name: "consoles", Label: "Consoles", Kind: KindMultiselect, ValueFrom: "consoles.id", Table: TableConsoles},
}

var ConsoleFields = []Field{
	{Name: "name", Label: "Name", Kind: KindText, Required: true},
	{Name: "brand", Label: "Brand", Kind: KindText, Required: true},
	{Name: "description", Label: "Description", Kind: KindTextarea},
	{Name: "release_year", Label: "Release Year", Kind: KindYear},
	{Name: "image_url", Label: "Image", Kind: KindImage, Bucket: storage.BucketConsoles},
}

var AchievementFields = []Field{
	{Name: "name", Label: "Name", Kind: KindText, Required: true},
	{Name: "description", Label: "Description", Kind: KindTextarea},
	{Name: "gid", Label: "Jeu", Kind: KindSelect, ValueFrom: "game.id", Table: TableGames, Required: true},
}

// Schema returns the fields of an entity ("game", "console" or "achievement").
func Schema(entity string) ([]Field, bool) {
	switch entity {
	case "game":
		return GameFields, true
	case "console":
		return ConsoleFields, true
	case "achievement":
		return AchievementFields, true
	}
	return nil, false
}
