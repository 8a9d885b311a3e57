package httpx

import (
	"sync"

	"github.com/ua-parser/uap-go/uaparser"
)

// UserAgentParser reduces a User-Agent header value to a browser family
// for access logs.
type UserAgentParser func(uastring string) string

var (
	uapOnce   sync.Once
	uapParser *uaparser.Parser
)

// UAPFamily parses with the regex set bundled in uap-go. The parser is
// compiled on first use and shared by every connection.
func UAPFamily(uastring string) string {
	if uastring == "" {
		return ""
	}
	uapOnce.Do(func() { uapParser = uaparser.NewFromSaved() })
	return uapParser.ParseUserAgent(uastring).Family
}
