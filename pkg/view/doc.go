// Package view holds the per-widget view model the form framework builds
// before rendering: the container with its primary element, named auxiliary
// children and optional wrapper, the label and errors partials, and the
// surrounding view with its layout and attribute set.
package view
