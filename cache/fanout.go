package cache

import (
	"github.com/hasancaglar07/tarfcomtr-sub001/common"
	"github.com/hasancaglar07/tarfcomtr-sub001/logger"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
)

// postSegments maps a post type to its public route segment.
var postSegments = map[models.PostType]string{
	models.PostTypeBlog:    "blog",
	models.PostTypeEvent:   "events",
	models.PostTypeVideo:   "videos",
	models.PostTypePodcast: "podcasts",
	models.PostTypeService: "services",
}

// PostSegment returns the public route segment for a post type.
func PostSegment(t models.PostType) string {
	if seg, ok := postSegments[t]; ok {
		return seg
	}
	return string(t)
}

// Invalidator expands one mutation into the full set of cache tags and
// rendered paths that could contain the old value. Paths fan out over
// every locale because the shared navigation references content-page
// slugs in all locales at once; over-invalidation is the accepted
// trade-off here. A nil Invalidator is a no-op, which keeps store
// tests free of cache plumbing.
type Invalidator struct {
	store *Store
	pages *PageCache
}

func NewInvalidator(store *Store, pages *PageCache) *Invalidator {
	return &Invalidator{store: store, pages: pages}
}

// ContentPageChanged purges a content page and every route that could
// render it. Pass both slugs on a rename; omitting either would leave
// a stale cached render reachable.
func (i *Invalidator) ContentPageChanged(slugs ...string) {
	if i == nil {
		return
	}
	tags := []string{TagContentPages()}
	paths := []string{"/", "/admin", "/admin/pages"}
	for _, s := range slugs {
		if s == "" {
			continue
		}
		tags = append(tags, TagContentPage(s))
	}
	for _, locale := range common.Locales {
		paths = append(paths, "/"+locale)
		for _, s := range slugs {
			if s == "" {
				continue
			}
			paths = append(paths, "/"+locale+"/"+s)
		}
	}
	i.purge(tags, paths)
	logger.Debug("content page invalidated", "slugs", slugs)
}

// PostChanged purges one post and the listings of its type. Slug may
// be empty for list-only invalidation.
func (i *Invalidator) PostChanged(t models.PostType, locale, slug string) {
	if i == nil {
		return
	}
	tags := []string{TagPosts(t, locale)}
	if slug != "" {
		tags = append(tags, TagPost(t, locale, slug))
	}
	segment := PostSegment(t)
	paths := []string{"/", "/admin", "/admin/posts/" + string(t)}
	for _, l := range common.Locales {
		paths = append(paths, "/"+l, "/"+l+"/"+segment)
		if slug != "" {
			paths = append(paths, "/"+l+"/"+segment+"/"+slug)
		}
	}
	i.purge(tags, paths)
	logger.Debug("post invalidated", "type", t, "locale", locale, "slug", slug)
}

// CategoryChanged cascades to the post listings of the type, because
// category names are denormalized into listing views.
func (i *Invalidator) CategoryChanged(locale string, t models.PostType) {
	if i == nil {
		return
	}
	tags := []string{TagCategories(locale, t), TagCategories(locale, "")}
	if t != "" {
		tags = append(tags, TagPosts(t, locale))
	}
	i.purge(tags, i.homePaths())
	if t != "" {
		i.PostChanged(t, locale, "")
	}
}

func (i *Invalidator) HeroChanged(locale string) {
	if i == nil {
		return
	}
	i.purge([]string{TagHeroes(locale)}, i.homePaths())
}

func (i *Invalidator) FAQChanged(locale string) {
	if i == nil {
		return
	}
	i.purge([]string{TagFAQs(locale)}, i.homePaths())
}

func (i *Invalidator) SettingsChanged(locale string) {
	if i == nil {
		return
	}
	i.purge([]string{TagSettings(locale)}, i.homePaths())
}

func (i *Invalidator) homePaths() []string {
	paths := []string{"/", "/admin"}
	for _, l := range common.Locales {
		paths = append(paths, "/"+l)
	}
	return paths
}

func (i *Invalidator) purge(tags, paths []string) {
	if i.store != nil {
		i.store.PurgeTags(tags...)
	}
	if i.pages != nil {
		i.pages.PurgePaths(paths...)
	}
}
