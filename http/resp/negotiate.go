package resp

import (
	"mime"
	"sort"
	"strconv"
	"strings"
)

const (
	jsonMediaType = "application/json"
	xmlMediaType  = "application/xml"
)

// offered lists the media types Negotiate can produce, in order of preference.
var offered = []string{jsonMediaType, xmlMediaType, "text/xml"}

type acceptRange struct {
	typ, subtype string
	q            float64
	order        int
}

// negotiate picks from offered the media type best matching the Accept header.
// A header without any well-formed range accepts anything, so the first offered type returns.
// If nothing offered is acceptable, negotiate returns an empty string.
func negotiate(accept string) string {
	ranges := parseAccept(accept)
	if len(ranges) == 0 {
		return offered[0]
	}

	for _, ar := range ranges {
		if ar.q <= 0 {
			continue
		}

		for _, o := range offered {
			typ, subtype, _ := strings.Cut(o, "/")
			if excluded(ranges, typ, subtype) {
				continue
			}

			switch {
			case ar.typ == "*" && ar.subtype == "*":
				return o
			case ar.typ == typ && ar.subtype == "*":
				return o
			case ar.typ == typ && ar.subtype == subtype:
				return o
			}
		}
	}

	return ""
}

// excluded reports whether an exact range in ranges rejects typ/subtype with q=0.
func excluded(ranges []acceptRange, typ, subtype string) bool {
	for _, ar := range ranges {
		if ar.typ == typ && ar.subtype == subtype && ar.q <= 0 {
			return true
		}
	}

	return false
}

// parseAccept splits an Accept header into its ranges,
// sorted by descending quality, then specificity, then order of appearance.
// Malformed ranges are skipped.
func parseAccept(accept string) []acceptRange {
	var ranges []acceptRange
	for i, part := range strings.Split(accept, ",") {
		mt, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}

		typ, subtype, ok := strings.Cut(mt, "/")
		if !ok {
			continue
		}

		q := 1.0
		if raw, ok := params["q"]; ok {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
				q = parsed
			}
		}

		ranges = append(ranges, acceptRange{typ: typ, subtype: subtype, q: q, order: i})
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].q != ranges[j].q {
			return ranges[i].q > ranges[j].q
		}

		return specificity(ranges[i]) > specificity(ranges[j])
	})

	return ranges
}

func specificity(ar acceptRange) int {
	switch {
	case ar.typ == "*":
		return 0
	case ar.subtype == "*":
		return 1
	default:
		return 2
	}
}
