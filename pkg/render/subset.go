package render

import (
	"strings"

	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// Metadata keys consulted when matching rows against a FieldSubset.
const (
	GroupMetadataKey = "group"
	TagsMetadataKey  = "tags"
)

// FieldSubset selects rows by key, by the "group" metadata value or by any
// of the comma separated "tags". Empty subsets keep every row.
type FieldSubset struct {
	Keys   []string
	Groups []string
	Tags   []string
}

// ParseFieldSubset reads a comma separated list as accepted by CLI flags.
// Plain tokens are keys; "group:" and "tag:" prefixes select by metadata.
func ParseFieldSubset(raw string) FieldSubset {
	var subset FieldSubset
	for _, token := range parseTokenList(raw) {
		prefix, value, found := strings.Cut(token, ":")
		if found {
			value = strings.TrimSpace(value)
			switch strings.ToLower(strings.TrimSpace(prefix)) {
			case "group":
				subset.Groups = append(subset.Groups, value)
				continue
			case "tag":
				subset.Tags = append(subset.Tags, value)
				continue
			}
		}
		subset.Keys = append(subset.Keys, token)
	}
	return subset
}

// ApplySubset removes rows that do not match subset, keeping order.
func ApplySubset(vm viewmodel.ViewModel, subset FieldSubset) viewmodel.ViewModel {
	matcher := newSubsetMatcher(subset)
	if matcher.empty() {
		return vm
	}
	return vm.Filter(matcher.matches)
}

type subsetMatcher struct {
	keys   map[string]struct{}
	groups map[string]struct{}
	tags   map[string]struct{}
}

func newSubsetMatcher(subset FieldSubset) subsetMatcher {
	return subsetMatcher{
		keys:   normaliseTokens(subset.Keys),
		groups: normaliseTokens(subset.Groups),
		tags:   normaliseTokens(subset.Tags),
	}
}

func (m subsetMatcher) empty() bool {
	return len(m.keys) == 0 && len(m.groups) == 0 && len(m.tags) == 0
}

func (m subsetMatcher) matches(row viewmodel.Row) bool {
	if _, ok := m.keys[normaliseToken(string(row.ID))]; ok {
		return true
	}
	if group := normaliseToken(row.Metadata[GroupMetadataKey]); group != "" {
		if _, ok := m.groups[group]; ok {
			return true
		}
	}
	for _, tag := range parseTokenList(row.Metadata[TagsMetadataKey]) {
		if _, ok := m.tags[normaliseToken(tag)]; ok {
			return true
		}
	}
	return false
}

func parseTokenList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		if token := normaliseToken(value); token != "" {
			out[token] = struct{}{}
		}
	}
	return out
}

func normaliseToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
