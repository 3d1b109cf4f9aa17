package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/devconf/internal/domain/document"
)

// emptyPreference replaces unset string preferences in a default profile.
const emptyPreference = -1

// profileSections are flattened into a user profile in this order; a key in
// a later section overrides the same key in an earlier one.
var profileSections = []string{"speech", "user", "brands", "location", "units"}

// BuildDefaultUserProfile flattens the preference sections of the user
// template into one map and then applies normalizeEmptyPreferences.
func BuildDefaultUserProfile(template *document.Document) (map[string]any, error) {
	profile, err := flattenProfile(template)
	if err != nil {
		return nil, err
	}
	normalizeEmptyPreferences(profile)
	return profile, nil
}

// UserProfile flattens the preference sections of the user document held by
// store. Values are returned as stored, without normalization.
func UserProfile(ctx context.Context, store *ConfigStore) (map[string]any, error) {
	doc, err := store.Content(ctx)
	if err != nil {
		return nil, err
	}
	return flattenProfile(doc)
}

func flattenProfile(doc *document.Document) (map[string]any, error) {
	profile := make(map[string]any)
	for _, section := range profileSections {
		v, ok := doc.Get(document.KeyPath{section})
		if !ok || v == nil {
			continue
		}
		values, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("preference section %q is not a mapping", section)
		}
		for k, val := range values {
			profile[k] = val
		}
	}
	return profile, nil
}

// normalizeEmptyPreferences replaces every empty string value with -1.
// Consumers of default profiles treat -1 as "not provided".
func normalizeEmptyPreferences(profile map[string]any) {
	for k, v := range profile {
		if s, ok := v.(string); ok && s == "" {
			profile[k] = emptyPreference
		}
	}
}
