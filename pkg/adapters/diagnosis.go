package adapters

import (
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/api"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/domain"
	"github.com/drors3/NaturalSignals-WireScope/pkg/models/store"
)

func MapDiagnosisDomainToApi(d domain.Diagnosis) api.Diagnosis {
	out := api.Diagnosis{
		ID:              d.ID,
		ProjectID:       d.ProjectID,
		Timestamp:       d.Timestamp,
		Issues:          make([]api.Issue, 0, len(d.Issues)),
		Recommendations: make([]api.Recommendation, 0, len(d.Recommendations)),
		OverallSeverity: string(d.OverallSeverity),
		SafetyAlert:     d.SafetyAlert,
	}
	for _, issue := range d.Issues {
		out.Issues = append(out.Issues, api.Issue{
			Code:           issue.Code,
			Description:    issue.Description,
			Severity:       string(issue.Severity),
			Component:      issue.Component,
			PossibleCauses: issue.PossibleCauses,
		})
	}
	for _, rec := range d.Recommendations {
		out.Recommendations = append(out.Recommendations, api.Recommendation{
			Priority:          rec.Priority,
			Action:            rec.Action,
			EstimatedTime:     rec.EstimatedTime,
			RequiredTools:     rec.RequiredTools,
			SafetyPrecautions: rec.SafetyPrecautions,
		})
	}
	return out
}

func MapDiagnosisDomainToStore(d domain.Diagnosis) store.DiagnosisRecord {
	doc := store.DiagnosisDoc{
		Issues:          make([]store.IssueDoc, 0, len(d.Issues)),
		Recommendations: make([]store.RecommendationDoc, 0, len(d.Recommendations)),
		SafetyAlert:     d.SafetyAlert,
	}
	for _, issue := range d.Issues {
		doc.Issues = append(doc.Issues, store.IssueDoc{
			Code:           issue.Code,
			Description:    issue.Description,
			Severity:       string(issue.Severity),
			Component:      issue.Component,
			PossibleCauses: issue.PossibleCauses,
		})
	}
	for _, rec := range d.Recommendations {
		doc.Recommendations = append(doc.Recommendations, store.RecommendationDoc{
			Priority:          rec.Priority,
			Action:            rec.Action,
			EstimatedTime:     rec.EstimatedTime,
			RequiredTools:     rec.RequiredTools,
			SafetyPrecautions: rec.SafetyPrecautions,
		})
	}
	return store.DiagnosisRecord{
		ID:              d.ID,
		ProjectID:       d.ProjectID,
		Timestamp:       d.Timestamp,
		OverallSeverity: string(d.OverallSeverity),
		Doc:             doc,
	}
}

func MapStoreDiagnosisToDomain(r store.DiagnosisRecord) domain.Diagnosis {
	out := domain.Diagnosis{
		ID:              r.ID,
		ProjectID:       r.ProjectID,
		Timestamp:       r.Timestamp,
		Issues:          make([]domain.Issue, 0, len(r.Doc.Issues)),
		Recommendations: make([]domain.Recommendation, 0, len(r.Doc.Recommendations)),
		OverallSeverity: domain.Severity(r.OverallSeverity),
		SafetyAlert:     r.Doc.SafetyAlert,
	}
	for _, issue := range r.Doc.Issues {
		out.Issues = append(out.Issues, domain.Issue{
			Code:           issue.Code,
			Description:    issue.Description,
			Severity:       domain.Severity(issue.Severity),
			Component:      issue.Component,
			PossibleCauses: issue.PossibleCauses,
		})
	}
	for _, rec := range r.Doc.Recommendations {
		out.Recommendations = append(out.Recommendations, domain.Recommendation{
			Priority:          rec.Priority,
			Action:            rec.Action,
			EstimatedTime:     rec.EstimatedTime,
			RequiredTools:     rec.RequiredTools,
			SafetyPrecautions: rec.SafetyPrecautions,
		})
	}
	return out
}
