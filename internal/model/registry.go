package model

import "sort"

// DefaultProfileID is the key of the fallback profile.
const DefaultProfileID = "default"

// Well-known skin identifiers.
const (
	SkinArcticFuse2 = "skin.arctic.fuse.2"
	SkinEstuary     = "skin.estuary"
)

// BuiltinProfiles returns the profiles shipped with the tool.
func BuiltinProfiles() []SkinProfile {
	return []SkinProfile{
		{
			ID:               SkinArcticFuse2,
			Name:             "Arctic Fuse 2",
			SearchWindow:     "11185",
			SearchProperty:   "CustomSearchTerm",
			ResultsControl:   "5000",
			AlternateControl: "5001",
			ReadyCondition:   "Window.IsVisible(11185)",
			SettleDelayMs:    1500,
		},
		{
			ID:   DefaultProfileID,
			Name: "Kodi built-in search",
		},
	}
}

// Registry maps skin identifiers to profiles. Unknown skins resolve to the
// default profile.
type Registry struct {
	profiles map[string]SkinProfile
}

// NewRegistry builds a registry from the built-in profiles followed by
// overrides. Later entries replace earlier ones with the same ID.
func NewRegistry(overrides ...SkinProfile) *Registry {
	r := &Registry{profiles: make(map[string]SkinProfile)}
	for _, p := range BuiltinProfiles() {
		r.Register(p)
	}
	for _, p := range overrides {
		r.Register(p)
	}
	return r
}

// Register adds or replaces a profile. Profiles without an ID are ignored.
func (r *Registry) Register(p SkinProfile) {
	if p.ID == "" {
		return
	}
	r.profiles[p.ID] = p
}

// Lookup returns the profile for skinID, or the default profile.
func (r *Registry) Lookup(skinID string) SkinProfile {
	if p, ok := r.profiles[skinID]; ok {
		return p
	}
	return r.Default()
}

// Has reports whether skinID has its own profile.
func (r *Registry) Has(skinID string) bool {
	_, ok := r.profiles[skinID]
	return ok
}

// Default returns the fallback profile.
func (r *Registry) Default() SkinProfile {
	if p, ok := r.profiles[DefaultProfileID]; ok {
		return p
	}
	return SkinProfile{ID: DefaultProfileID}
}

// Profiles returns all registered profiles sorted by ID.
func (r *Registry) Profiles() []SkinProfile {
	out := make([]SkinProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
