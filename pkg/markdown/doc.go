// Package markdown converts generated feature documentation with goldmark.
//
// [ToHTML] renders Markdown to an HTML fragment for previews. [ListedNames]
// reads rendered Markdown back and returns the feature names its list items
// carry, which lets callers verify output without string matching.
package markdown
