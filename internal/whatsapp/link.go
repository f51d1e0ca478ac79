// Package whatsapp builds the outbound inquiry deep link. No response
// is ever consumed; the visitor is redirected externally.
package whatsapp

import (
	"net/url"
	"strings"
)

// InquiryLink returns a wa.me link with a URL-encoded message naming
// the listing, optionally followed by the product page URL.
func InquiryLink(number, title, productURL string) string {
	msg := "Hola! Quisiera consultar sobre el producto: " + title
	link := "https://wa.me/" + strings.TrimPrefix(number, "+") + "?text=" + url.QueryEscape(msg)
	if productURL != "" {
		link += "%0A" + url.QueryEscape(productURL)
	}
	return link
}
