//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// FilterType selects how a Filter matches a message
// ENUM(keywords,exclude_keywords,author,kind)
type FilterType string
