package feed

import (
	"fmt"
	"strconv"

	"github.com/opsdesk/opsdesk-backend/internal/domain"
)

// Normalizers are pure: same row in, same item out. Summaries and detail
// fields are recomputed on every aggregation pass, so template changes show
// up after the next recompute without touching stored rows. Detail is a
// whitelist per category; raw rows never leak extra columns into the feed.

const dateLayout = "2006-01-02"

func normalizeVacation(rec domain.Record) (domain.FeedItem, error) {
	req, ok := rec.(*domain.VacationRequest)
	if !ok {
		return domain.FeedItem{}, fmt.Errorf("normalize vacation: unexpected record type %T", rec)
	}

	start := req.StartDate.Format(dateLayout)
	end := req.EndDate.Format(dateLayout)
	days := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1

	detail := []domain.DetailField{
		{Label: "From", Value: start},
		{Label: "To", Value: end},
		{Label: "Days", Value: strconv.Itoa(days)},
	}
	if req.Comment != nil {
		detail = append(detail, domain.DetailField{Label: "Comment", Value: *req.Comment})
	}

	return domain.FeedItem{
		ID:               req.ID,
		SourceCollection: domain.CollectionVacation,
		CreatedAt:        req.CreatedAt,
		SubjectName:      req.EmployeeName,
		SubjectEmail:     req.EmployeeEmail,
		Category:         domain.CategoryVacation,
		Summary:          fmt.Sprintf("%s requests vacation from %s to %s", req.EmployeeName, start, end),
		Detail:           detail,
		ReviewStatus:     req.ReviewStatus,
	}, nil
}

func normalizeTravel(rec domain.Record) (domain.FeedItem, error) {
	notice, ok := rec.(*domain.TravelNotice)
	if !ok {
		return domain.FeedItem{}, fmt.Errorf("normalize travel: unexpected record type %T", rec)
	}

	start := notice.StartDate.Format(dateLayout)
	end := notice.EndDate.Format(dateLayout)

	detail := []domain.DetailField{
		{Label: "Destination", Value: notice.Destination},
		{Label: "From", Value: start},
		{Label: "To", Value: end},
	}
	if notice.Purpose != nil {
		detail = append(detail, domain.DetailField{Label: "Purpose", Value: *notice.Purpose})
	}

	return domain.FeedItem{
		ID:               notice.ID,
		SourceCollection: domain.CollectionTravel,
		CreatedAt:        notice.CreatedAt,
		SubjectName:      notice.EmployeeName,
		SubjectEmail:     notice.EmployeeEmail,
		Category:         domain.CategoryTravel,
		Summary:          fmt.Sprintf("%s travels to %s from %s to %s", notice.EmployeeName, notice.Destination, start, end),
		Detail:           detail,
		ReviewStatus:     notice.ReviewStatus,
	}, nil
}

func normalizeEquipment(rec domain.Record) (domain.FeedItem, error) {
	req, ok := rec.(*domain.EquipmentRequest)
	if !ok {
		return domain.FeedItem{}, fmt.Errorf("normalize equipment: unexpected record type %T", rec)
	}

	detail := []domain.DetailField{
		{Label: "Item", Value: req.Item},
	}
	if req.Justification != nil {
		detail = append(detail, domain.DetailField{Label: "Justification", Value: *req.Justification})
	}

	return domain.FeedItem{
		ID:               req.ID,
		SourceCollection: domain.CollectionEquipment,
		CreatedAt:        req.CreatedAt,
		SubjectName:      req.EmployeeName,
		SubjectEmail:     req.EmployeeEmail,
		Category:         domain.CategoryEquipment,
		Summary:          fmt.Sprintf("%s requests equipment: %s", req.EmployeeName, req.Item),
		Detail:           detail,
		ReviewStatus:     req.ReviewStatus,
	}, nil
}
