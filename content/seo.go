package content

// EffectiveSEO resolves the title/description a renderer should emit.
// The fallback order is part of the read contract:
//
//	title:       explicit seoTitle, body.seo.title, body.hero.title, slug
//	description: explicit seoDescription, body.seo.description,
//	             body.hero.subtitle, body.hero.description, ""
func EffectiveSEO(slug string, seoTitle, seoDescription *string, body *PageBody) (title, description string) {
	switch {
	case seoTitle != nil && *seoTitle != "":
		title = *seoTitle
	case body != nil && body.SEO.Title != "":
		title = body.SEO.Title
	case body != nil && body.Hero.Title != "":
		title = body.Hero.Title
	default:
		title = slug
	}

	switch {
	case seoDescription != nil && *seoDescription != "":
		description = *seoDescription
	case body != nil && body.SEO.Description != "":
		description = body.SEO.Description
	case body != nil && body.Hero.Subtitle != "":
		description = body.Hero.Subtitle
	case body != nil && body.Hero.Description != "":
		description = body.Hero.Description
	}
	return title, description
}
