//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Format is the serialization of a rendered feed
// ENUM(rss,atom,json)
type Format string

// ContentType is the HTTP media type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatAtom:
		return "application/atom+xml; charset=utf-8"
	case FormatJson:
		return "application/feed+json; charset=utf-8"
	default:
		return "application/rss+xml; charset=utf-8"
	}
}
