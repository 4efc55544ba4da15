package normalize

import (
	"strings"

	"github.com/ahzs645/portfolio-themes/internal/types"
)

// PickSocialURL returns the URL of the first social whose network name
// matches any of the given aliases, comparing case-insensitively. List order
// decides ties; nil means no match.
func PickSocialURL(socials []types.RawSocial, aliases ...string) *string {
	for _, social := range socials {
		network := strings.ToLower(strings.TrimSpace(social.Network))
		for _, alias := range aliases {
			if network == strings.ToLower(alias) {
				url := social.URL
				return &url
			}
		}
	}
	return nil
}

// NormalizeSocialLinks resolves the raw social list into the fixed named
// slots templates consume. The email slot bypasses the social list and takes
// the given address verbatim; an empty address leaves the slot nil.
func NormalizeSocialLinks(socials []types.RawSocial, email string) types.SocialLinks {
	links := types.SocialLinks{
		GitHub:   PickSocialURL(socials, "github"),
		LinkedIn: PickSocialURL(socials, "linkedin"),
		Twitter:  PickSocialURL(socials, "twitter", "x"),
		YouTube:  PickSocialURL(socials, "youtube"),
		Website:  PickSocialURL(socials, "website", "personal"),
	}
	if email != "" {
		links.Email = &email
	}
	return links
}
