// Package schemas holds the response contracts of the backend endpoints.
// Each document describes the success envelope of one resource.
package schemas

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed json/*.json
var files embed.FS

var (
	Like        = mustCompile("like.json")
	Review      = mustCompile("review.json")
	Profile     = mustCompile("profile.json")
	ProfileList = mustCompile("profileList.json")
	User        = mustCompile("user.json")
)

// Compile loads one embedded schema by file name.
func Compile(name string) (*jsonschema.Schema, error) {
	data, err := files.ReadFile("json/" + name)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)
	url := "mem://schemas/" + name
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	return c.Compile(url)
}

func mustCompile(name string) *jsonschema.Schema {
	s, err := Compile(name)
	if err != nil {
		panic(err)
	}
	return s
}
