// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/pdiddy/writer/pkg/types"

const presentLabel = "Present"

// DateRange formats the date column shared by education, experience, and
// project entries: "Sep 2020 -- Jun 2024", or "Sep 2020 -- Present" when
// present is set, in which case end is ignored.
func DateRange(start, end types.Period, present bool) string {
	if present {
		return start.Month + " " + start.Year + " -- " + presentLabel
	}
	return start.Month + " " + start.Year + " -- " + end.Month + " " + end.Year
}

func entryRange(startMonth, startYear, endMonth, endYear string, present bool) string {
	return DateRange(
		types.Period{Month: startMonth, Year: startYear},
		types.Period{Month: endMonth, Year: endYear},
		present,
	)
}
