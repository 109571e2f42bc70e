package model

import (
	"errors"
	"strings"
)

// ErrNoQuery is returned by ParseParams when no search text was supplied.
var ErrNoQuery = errors.New("no search parameter")

// Property is a window property set on the Home window before searching.
type Property struct {
	Name  string `yaml:"name"  json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Params are the decoded addon launch parameters.
type Params struct {
	Query      string
	Method     string
	Window     string
	Properties []Property
}

// SearchRequest is the unit of work for one invocation.
type SearchRequest struct {
	Query          string
	Method         SearchMethod
	Profile        SkinProfile
	WindowOverride string
	Properties     []Property
}

// Window returns the search window to activate, honouring the override.
func (r SearchRequest) Window() string {
	if r.WindowOverride != "" {
		return r.WindowOverride
	}
	return r.Profile.SearchWindow
}

// tripleBar lets callers pass queries containing '&'. When an argument
// contains it, '&' is literal.
const tripleBar = "|||"

// ParseParams decodes key=value tokens from addon launch arguments.
// Each argument may hold several tokens separated by '&' or "|||".
// Tokens without '=' are ignored. Returns ErrNoQuery when search is absent
// or empty.
func ParseParams(args []string) (Params, error) {
	var p Params
	for _, arg := range args {
		for _, tok := range splitTokens(arg) {
			key, value, ok := strings.Cut(tok, "=")
			if !ok {
				continue
			}
			key = strings.ToLower(strings.TrimSpace(key))
			value = strings.TrimSpace(value)
			switch key {
			case "search", "query":
				p.Query = value
			case "method":
				p.Method = value
			case "window":
				p.Window = value
			case "property":
				name, val, ok := strings.Cut(value, ",")
				if ok && strings.TrimSpace(name) != "" {
					p.Properties = append(p.Properties, Property{Name: strings.TrimSpace(name), Value: val})
				}
			}
		}
	}
	if p.Query == "" {
		return p, ErrNoQuery
	}
	return p, nil
}

func splitTokens(arg string) []string {
	if strings.Contains(arg, tripleBar) {
		return strings.Split(arg, tripleBar)
	}
	return strings.Split(arg, "&")
}
