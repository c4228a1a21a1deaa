package roster

import (
	"strings"
)

// EmptyPlaceholder is the in-roster marker for "no data" that features write.
// IsEmpty treats it like an empty string, and exports render it as "" or as
// the configured display placeholder.
const EmptyPlaceholder = "N/A"

// IsEmpty reports whether v carries no data: empty, whitespace-only or the
// placeholder.
func IsEmpty(v string) bool {
	t := strings.TrimSpace(v)
	return t == "" || t == EmptyPlaceholder
}

// CamperKey derives the identity key shared by enrollment and activity rows:
// lower-cased first name, last name and grade joined by underscores, with
// spaces replaced by underscores. Missing fields count as empty.
func CamperKey(fields map[string]string) string {
	first := keyPart(fields[string(FirstName)])
	last := keyPart(fields[string(LastName)])
	grade := keyPart(fields[string(Grade)])

	return first + "_" + last + "_" + grade
}

func keyPart(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}

// Camper is a single roster row: an immutable identity key plus a bag of
// named string fields. A missing field means "no data".
type Camper struct {
	key    string
	fields map[string]string
}

// NewCamper creates a camper keyed by CamperKey(fields). The map is copied.
func NewCamper(fields map[string]string) *Camper {
	return NewCamperWithKey(CamperKey(fields), fields)
}

// NewCamperWithKey creates a camper with an explicit key. The map is copied.
func NewCamperWithKey(key string, fields map[string]string) *Camper {
	c := &Camper{key: key, fields: make(map[string]string, len(fields))}
	for k, v := range fields {
		c.fields[k] = v
	}

	return c
}

// Key returns the identity key.
func (c *Camper) Key() string {
	return c.key
}

// Value returns the value of h, or "" when absent.
func (c *Camper) Value(h Header) string {
	return c.fields[string(h)]
}

// Lookup returns the value of h and whether it is present.
func (c *Camper) Lookup(h Header) (string, bool) {
	v, ok := c.fields[string(h)]
	return v, ok
}

// IsEmpty reports whether h carries no data for this camper.
func (c *Camper) IsEmpty(h Header) bool {
	return IsEmpty(c.fields[string(h)])
}

// Set assigns a value.
func (c *Camper) Set(h Header, v string) {
	c.fields[string(h)] = v
}

// SetIfAbsent assigns v only when h carries no data. It returns true if the
// value was written.
func (c *Camper) SetIfAbsent(h Header, v string) bool {
	if !c.IsEmpty(h) {
		return false
	}

	c.fields[string(h)] = v

	return true
}

// Fields returns a snapshot of the payload.
func (c *Camper) Fields() map[string]string {
	out := make(map[string]string, len(c.fields))
	for k, v := range c.fields {
		out[k] = v
	}

	return out
}

// DisplayName returns "First Last", using the preferred name when present.
func (c *Camper) DisplayName() string {
	first := c.Value(FirstName)
	if pref := c.Value(PreferredName); !IsEmpty(pref) {
		first = pref
	}

	return strings.TrimSpace(first + " " + c.Value(LastName))
}

// Assignments returns the non-empty round slot values in round order.
func (c *Camper) Assignments() []string {
	var out []string

	for _, slot := range RoundSlots {
		if v := c.Value(slot); !IsEmpty(v) {
			out = append(out, v)
		}
	}

	return out
}
