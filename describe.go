package oasgen

import (
	"strings"

	"github.com/Gobd/oasgen/transform"
)

type describe struct {
	docOnly
	desc string
}

// Describe returns a documentation-only rule that appends desc to the node
// description. Runs of whitespace in desc are collapsed to single spaces.
func Describe(desc string) Rule {
	return &describe{desc: desc}
}

func (r *describe) Describe(s *Schema) error {
	appendDescription(s, r.desc)
	return nil
}

func appendDescription(s *Schema, desc string) {
	desc = transform.CollapseSpace(desc)
	if desc == "" {
		return
	}
	if s.Description != "" && !strings.HasSuffix(s.Description, " ") {
		s.Description += " "
	}
	s.Description += desc
}
