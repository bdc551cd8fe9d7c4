package cache

import (
	"fmt"

	"github.com/hasancaglar07/tarfcomtr-sub001/models"
)

// Tag names are stable strings shared across process restarts; the
// admin and the store must agree on them byte for byte.

func TagContentPages() string {
	return "content-pages"
}

func TagContentPage(slug string) string {
	return "content-page:" + slug
}

func TagPosts(t models.PostType, locale string) string {
	return fmt.Sprintf("posts:%s:%s", t, locale)
}

func TagPost(t models.PostType, locale, slug string) string {
	return fmt.Sprintf("post:%s:%s:%s", t, locale, slug)
}

// TagCategories addresses the category list for one post type, or for
// every type when typ is empty.
func TagCategories(locale string, typ models.PostType) string {
	if typ == "" {
		return fmt.Sprintf("categories:%s:all", locale)
	}
	return fmt.Sprintf("categories:%s:%s", locale, typ)
}

func TagHeroes(locale string) string {
	return "heroes:" + locale
}

func TagFAQs(locale string) string {
	return "faqs:" + locale
}

func TagSettings(locale string) string {
	return "settings:" + locale
}
