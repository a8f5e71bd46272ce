// Package resolver decides where a visitor of the ontology site should be
// sent, given the path and fragment of the page they loaded.
package resolver

import "strings"

const (
	// RawContentBase replaces LocalPrefix when an ontology file is requested.
	RawContentBase = "https://raw.githubusercontent.com/SciCrunch/NIF-Ontology/xml-final"
	// OntologyMarker marks a path as referencing an ontology file.
	OntologyMarker = ".owl"
	// LocalPrefix is the literal substring swapped for RawContentBase.
	LocalPrefix = "/NIF"
)

// Rule identifies which branch of the decision table matched.
type Rule string

const (
	RuleFragment Rule = "fragment"
	RuleOntology Rule = "ontology"
	RuleNone     Rule = "none"
)

// Location is the navigation context of the current page.
// An empty Fragment means the URL carried no fragment.
type Location struct {
	Path     string `json:"path" yaml:"path"`
	Fragment string `json:"fragment,omitempty" yaml:"fragment,omitempty"`
}

// Decision is the outcome of Resolve. Target is empty for RuleNone.
type Decision struct {
	Rule   Rule   `json:"rule" yaml:"rule"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

// Navigate reports whether the decision asks for a navigation.
func (d Decision) Navigate() bool {
	return d.Rule == RuleFragment || d.Rule == RuleOntology
}

// Message returns the diagnostic trace line for the decision.
func (d Decision) Message() string {
	switch d.Rule {
	case RuleFragment:
		return "Fragment detected, redirecting."
	case RuleOntology:
		return "Redirecting to raw content host."
	default:
		return "Not an ontology file."
	}
}

// Navigator performs a navigation to target.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }

// Resolve applies the redirect rules to loc. The first matching rule wins:
// a fragment is promoted to a trailing path segment; otherwise a path
// containing OntologyMarker has its first LocalPrefix replaced by
// RawContentBase; otherwise nothing happens.
//
// The replacement is a plain substring replace and is not aware of path
// segment boundaries. A path without LocalPrefix is returned unchanged.
func Resolve(loc Location) Decision {
	if loc.Fragment != "" {
		return Decision{Rule: RuleFragment, Target: loc.Path + "/" + loc.Fragment}
	}
	if strings.Contains(loc.Path, OntologyMarker) {
		return Decision{Rule: RuleOntology, Target: strings.Replace(loc.Path, LocalPrefix, RawContentBase, 1)}
	}
	return Decision{Rule: RuleNone}
}

// Apply hands the decision to nav if it asks for a navigation. It calls nav
// at most once and reports whether it did.
func Apply(d Decision, nav Navigator) bool {
	if !d.Navigate() || nav == nil {
		return false
	}
	nav.Navigate(d.Target)
	return true
}
