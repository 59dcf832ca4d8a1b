package tools

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

const acePrefix = "xn--"

var (
	urlRegexp = regexp.MustCompile(`(?i)^(?:https?|ftps?)://` +
		`(?:[^\s:@/]+(?::[^\s:@/]*)?@)?` +
		`(?:localhost|\d{1,3}(?:\.\d{1,3}){3}|\[[0-9a-f:.]+\]|` +
		`(?:[\p{L}\p{N}](?:[\p{L}\p{N}-]{0,61}[\p{L}\p{N}])?\.)+(?:\p{L}{2,63}|xn--[a-z0-9-]{1,59})\.?)` +
		`(?::\d{1,5})?` +
		`(?:[/?#]\S*)?$`)

	hanRunRegexp = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]+`)
)

// ValidateUrl accepts absolute http(s)/ftp(s) urls with a dns name,
// an ip address or localhost as host. Unicode host labels are allowed.
func ValidateUrl(v string) bool {
	if len(v) > 2048 || !urlRegexp.MatchString(v) {
		return false
	}

	_, err := url.Parse(v)

	return err == nil
}

// ExtractDomain cuts host[:port] out of uri, or scheme://host[:port] when
// withScheme is set. No validation is made.
func ExtractDomain(uri string, withScheme bool) string {
	if uri == "" {
		return ""
	}

	start := strings.Index(uri, "//")
	if start == -1 {
		start = -2
	}

	end := len(uri)
	if i := strings.Index(uri[start+2:], "/"); i != -1 {
		end = start + 2 + i
	}

	if withScheme {
		return uri[:end]
	}

	return uri[start+2 : end]
}

// EncodeUrl replaces every run of CJK unified ideographs with its
// xn-- punycode form. Each run replaces the first occurrence left in the
// url, so a repeated run is encoded left to right.
func EncodeUrl(uri string) string {
	uri = strings.TrimSpace(uri)

	runs := hanRunRegexp.FindAllString(uri, -1)
	if len(runs) == 0 {
		return uri
	}

	for _, run := range runs {
		encoded, err := idna.Punycode.ToASCII(run)
		if err != nil || !strings.HasPrefix(encoded, acePrefix) {
			continue
		}

		uri = strings.Replace(uri, run, encoded, 1)
	}

	return uri
}
