// Package content defines the typed shape of a content page body
// (hero, sections, CTA, SEO) and validates it at the write boundary.
// The body is stored as one opaque JSON document; extra keys survive a
// round trip because the raw bytes are persisted, not this view.
package content

import (
	"encoding/json"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type SectionLayout string

const (
	LayoutGrid     SectionLayout = "grid"
	LayoutList     SectionLayout = "list"
	LayoutTimeline SectionLayout = "timeline"
	LayoutStats    SectionLayout = "stats"
	LayoutTable    SectionLayout = "table"
	LayoutSplit    SectionLayout = "split"
)

var sectionLayouts = []interface{}{
	LayoutGrid, LayoutList, LayoutTimeline, LayoutStats, LayoutTable, LayoutSplit,
}

type Action struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Variant string `json:"variant,omitempty"`
}

type StatBlock struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Helper string `json:"helper,omitempty"`
}

type SectionItem struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Badge       string      `json:"badge,omitempty"`
	Meta        string      `json:"meta,omitempty"`
	Highlight   string      `json:"highlight,omitempty"`
	Bullets     []string    `json:"bullets,omitempty"`
	Stats       []StatBlock `json:"stats,omitempty"`
	CTA         *Action     `json:"cta,omitempty"`
}

type SectionTable struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

type SectionCallout struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Section struct {
	ID          string          `json:"id"`
	Eyebrow     string          `json:"eyebrow,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Layout      SectionLayout   `json:"layout,omitempty"`
	Ordered     bool            `json:"ordered,omitempty"`
	Columns     int             `json:"columns,omitempty"`
	Items       []SectionItem   `json:"items,omitempty"`
	Stats       []StatBlock     `json:"stats,omitempty"`
	Table       *SectionTable   `json:"table,omitempty"`
	Callout     *SectionCallout `json:"callout,omitempty"`
}

type Hero struct {
	Eyebrow     string      `json:"eyebrow,omitempty"`
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Description string      `json:"description,omitempty"`
	Highlight   string      `json:"highlight,omitempty"`
	Badge       string      `json:"badge,omitempty"`
	Stats       []StatBlock `json:"stats,omitempty"`
	Actions     []Action    `json:"actions,omitempty"`
}

type CTA struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	PrimaryAction   Action  `json:"primaryAction"`
	SecondaryAction *Action `json:"secondaryAction,omitempty"`
}

type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type PageBody struct {
	Hero     Hero        `json:"hero"`
	Intro    string      `json:"intro,omitempty"`
	Sections []Section   `json:"sections"`
	Stats    []StatBlock `json:"stats,omitempty"`
	CTA      CTA         `json:"cta"`
	SEO      SEO         `json:"seo,omitempty"`
}

var ErrMalformedJSON = errors.New("içerik JSON formatı hatalı")

// ParseBody decodes and validates a page body. A failing body rejects
// the whole write; nothing is ever partially stored.
func ParseBody(raw []byte) (*PageBody, error) {
	if len(raw) == 0 {
		return nil, ErrMalformedJSON
	}
	var body PageBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, ErrMalformedJSON
	}
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return &body, nil
}

// Validate enforces the required shape. Errors carry field paths so
// the admin form can point at the offending input.
func (b *PageBody) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Hero, validation.By(func(interface{}) error {
			return validation.ValidateStruct(&b.Hero,
				validation.Field(&b.Hero.Title, validation.Required.Error("hero.title zorunludur")),
				validation.Field(&b.Hero.Subtitle, validation.Required.Error("hero.subtitle zorunludur")),
			)
		})),
		validation.Field(&b.Sections, validation.NotNil.Error("sections listesi zorunludur"), validation.By(validateSections(b.Sections))),
		validation.Field(&b.CTA, validation.By(func(interface{}) error {
			return validation.ValidateStruct(&b.CTA,
				validation.Field(&b.CTA.Title, validation.Required.Error("cta.title zorunludur")),
				validation.Field(&b.CTA.Description, validation.Required.Error("cta.description zorunludur")),
				validation.Field(&b.CTA.PrimaryAction, validation.By(func(interface{}) error {
					return validation.ValidateStruct(&b.CTA.PrimaryAction,
						validation.Field(&b.CTA.PrimaryAction.Label, validation.Required.Error("cta.primaryAction.label zorunludur")),
						validation.Field(&b.CTA.PrimaryAction.Href, validation.Required.Error("cta.primaryAction.href zorunludur")),
					)
				})),
			)
		})),
	)
}

func validateSections(sections []Section) validation.RuleFunc {
	return func(interface{}) error {
		for i := range sections {
			s := &sections[i]
			err := validation.ValidateStruct(s,
				validation.Field(&s.ID, validation.Required.Error("section.id zorunludur")),
				validation.Field(&s.Title, validation.Required.Error("section.title zorunludur")),
				validation.Field(&s.Layout, validation.In(sectionLayouts...).Error("geçersiz section.layout")),
			)
			if err != nil {
				return err
			}
		}
		return nil
	}
}
