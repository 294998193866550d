// Package seed ships the built-in demo datasets. A collection whose slot
// is empty (or unreadable) starts from these records, so a fresh install
// always has something to show.
package seed

import (
	"fmt"

	"embed"

	"gopkg.in/yaml.v3"

	"github.com/opsdeck/opsdeck/types"
)

//go:embed data/*.yaml
var dataFS embed.FS

// decode reads one embedded dataset. The data is compiled in, so a
// failure here is a programming error and panics.
func decode[T any](name string) []T {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		panic(fmt.Sprintf("seed: missing embedded dataset %s: %v", name, err))
	}
	var out []T
	if err := yaml.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("seed: invalid dataset %s: %v", name, err))
	}
	return out
}

func Clients() []types.Client     { return decode[types.Client]("clients.yaml") }
func Projects() []types.Project   { return decode[types.Project]("projects.yaml") }
func Tasks() []types.Task         { return decode[types.Task]("tasks.yaml") }
func Users() []types.User         { return decode[types.User]("users.yaml") }
func Timesheets() []types.Timesheet { return decode[types.Timesheet]("timesheets.yaml") }
func Roles() []types.Role         { return decode[types.Role]("roles.yaml") }

// Settings returns the one-element general settings collection.
func Settings() []types.GeneralSettings {
	return decode[types.GeneralSettings]("settings.yaml")
}
