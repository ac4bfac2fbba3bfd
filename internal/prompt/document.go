// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"fmt"
	"slices"

	"github.com/pdiddy/writer/internal/render"
	"github.com/pdiddy/writer/pkg/types"
)

const bodyToken = "PlaceHolderBody"

// Document builds the family payload from the answers.
func Document(family string, r Result) (types.Document, error) {
	v := r.Values
	switch family {
	case render.FamilyResume:
		basic := make(map[string]string)
		for _, p := range render.BasicPlaceholders() {
			if val, ok := v[p.Token]; ok {
				basic[p.Token] = val
			}
		}
		return types.Document{Resume: &types.ResumeData{
			TemplateName:   r.Template,
			BasicInfo:      basic,
			OutputFilename: r.Output,
		}}, nil

	case render.FamilyReport, render.FamilyReportGrid:
		return types.Document{Report: &types.ReportData{
			TemplateName:   r.Template,
			Title:          v["PlaceHolderTitle"],
			Abstract:       v["PlaceHolderAbstract"],
			IndexTerms:     v["PlaceHolderIndexTerms"],
			Introduction:   v["PlaceHolderIntroduction"],
			Authors:        slices.Clone(r.Authors),
			OutputFilename: r.Output,
		}}, nil

	case render.FamilyLetter:
		return types.Document{Letter: &types.LetterData{
			Name:           v["PlaceHolderName"],
			Address:        v["PlaceHolderAddress"],
			City:           v["PlaceHolderCityStateZip"],
			Phone:          v["PlaceHolderPhone"],
			Email:          v["PlaceHolderEmail"],
			Recipient:      v["PlaceHolderHiringManagerName"],
			Company:        v["PlaceHolderCompanyName"],
			CompanyAddress: v["PlaceHolderCompanyAddress"],
			CompanyCity:    v["PlaceHolderCompanyCityStateZip"],
			Position:       v["PlaceHolderPositionTitle"],
			Date:           v["PlaceHolderDate"],
			Body:           v[bodyToken],
			Template:       r.Template,
			OutputFilename: r.Output,
		}}, nil
	}
	return types.Document{}, fmt.Errorf("unknown template family %q", family)
}
