package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var ErrUnknownTimeBucket = errors.New("unknown time bucket")

// TimeBucket is a range over a recipe's total time.
// Both Under30/From30To60 and From30To60/Over60 meet at an inclusive edge:
// exactly 30 and exactly 60 minutes belong to From30To60 only.
type TimeBucket int

const (
	AnyTime TimeBucket = iota
	Under30
	From30To60
	Over60
)

// ParseTimeBucket accepts "<30", "30-60" and "60+", plus the legacy form values "30" and "60".
// The empty string is AnyTime.
func ParseTimeBucket(s string) (TimeBucket, error) {
	switch strings.TrimSpace(s) {
	case "":
		return AnyTime, nil
	case "<30", "30":
		return Under30, nil
	case "30-60", "60":
		return From30To60, nil
	case "60+", ">60":
		return Over60, nil
	default:
		return AnyTime, fmt.Errorf("%w: %q", ErrUnknownTimeBucket, s)
	}
}

func (b TimeBucket) String() string {
	switch b {
	case Under30:
		return "<30"
	case From30To60:
		return "30-60"
	case Over60:
		return "60+"
	default:
		return ""
	}
}

// Contains reports whether a total time in minutes falls in the bucket.
func (b TimeBucket) Contains(total int) bool {
	switch b {
	case Under30:
		return total < 30
	case From30To60:
		return total >= 30 && total <= 60
	case Over60:
		return total > 60
	default:
		return true
	}
}

func (b TimeBucket) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *TimeBucket) UnmarshalText(text []byte) error {
	v, err := ParseTimeBucket(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Criteria is a composite filter. Zero-valued fields impose no constraint and
// all set fields must match.
type Criteria struct {
	Category       string     `json:"category,omitempty"`
	Difficulty     string     `json:"difficulty,omitempty"`
	Time           TimeBucket `json:"time,omitempty"`
	Search         string     `json:"search,omitempty"`
	VegetarianOnly bool       `json:"vegetarian,omitempty"`
}

func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Fields returns the set criteria keyed by their query parameter names.
func (c Criteria) Fields() map[string]any {
	fields := map[string]any{}
	if c.Category != "" {
		fields["category"] = c.Category
	}
	if c.Difficulty != "" {
		fields["difficulty"] = c.Difficulty
	}
	if c.Time != AnyTime {
		fields["time"] = c.Time.String()
	}
	if c.Search != "" {
		fields["search"] = c.Search
	}
	if c.VegetarianOnly {
		fields["vegetarian"] = true
	}
	return fields
}

// Match reports whether r satisfies every set criterion.
func (c Criteria) Match(r Recipe) bool {
	if c.Category != "" && !strings.EqualFold(r.Category, c.Category) {
		return false
	}
	if c.Difficulty != "" && !strings.EqualFold(r.Difficulty, c.Difficulty) {
		return false
	}
	if !c.Time.Contains(r.TotalMinutes()) {
		return false
	}
	if c.Search != "" && !containsFold(r.Name, c.Search) {
		return false
	}
	if c.VegetarianOnly && !r.IsVegetarian() {
		return false
	}
	return true
}

// Filter returns the recipes matching c in their original order.
// The result never aliases recipes and is never nil.
func Filter(recipes []Recipe, c Criteria) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// SearchText keeps recipes whose name or description contains term,
// case-insensitively. An empty term returns recipes unchanged.
func SearchText(recipes []Recipe, term string) []Recipe {
	if term == "" {
		return recipes
	}
	out := make([]Recipe, 0)
	for _, r := range recipes {
		if containsFold(r.Name, term) || containsFold(r.Description, term) {
			out = append(out, r)
		}
	}
	return out
}

// ParseCriteria reads criteria from query parameters: category, difficulty,
// time, q and vegetarian. Unparseable values are treated as unset.
func ParseCriteria(v url.Values) Criteria {
	c := Criteria{
		Category:   strings.TrimSpace(v.Get("category")),
		Difficulty: strings.TrimSpace(v.Get("difficulty")),
		Search:     strings.TrimSpace(v.Get("q")),
	}
	if b, err := ParseTimeBucket(v.Get("time")); err == nil {
		c.Time = b
	}
	switch veg := strings.ToLower(v.Get("vegetarian")); veg {
	case "on", "yes":
		c.VegetarianOnly = true
	default:
		c.VegetarianOnly, _ = strconv.ParseBool(veg)
	}
	return c
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
