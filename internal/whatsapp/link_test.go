package whatsapp_test

import (
	"strings"
	"testing"

	"artesania/internal/whatsapp"
)

func TestInquiryLink(t *testing.T) {
	link := whatsapp.InquiryLink("56939123751", "Mesa de Roble", "")
	if !strings.HasPrefix(link, "https://wa.me/56939123751?text=") {
		t.Fatalf("bad prefix: %s", link)
	}
	if !strings.Contains(link, "Mesa+de+Roble") {
		t.Fatalf("title not encoded: %s", link)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("unencoded space: %s", link)
	}
}

func TestInquiryLinkAppendsProductURL(t *testing.T) {
	link := whatsapp.InquiryLink("+56939123751", "Jarrón", "https://example.test/product/p-1")
	if strings.Contains(link, "+569") {
		t.Fatalf("leading plus must be stripped: %s", link)
	}
	if !strings.Contains(link, "%0A") {
		t.Fatalf("product URL should follow on a new line: %s", link)
	}
}
